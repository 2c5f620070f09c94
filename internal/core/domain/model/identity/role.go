package identity

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role is the authorization role attached to an identity.
//
// Customers own orders and services. Organizations additionally may register
// new customer identities. Staff has unrestricted authorization over all
// entities and fields.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// RoleCustomer is the default role for end customers.
	RoleCustomer

	// RoleOrganization is a tenant organization that may register customers.
	RoleOrganization

	// RoleStaff is the elevated role with unrestricted authorization.
	RoleStaff
)

// getValidRoleStrings returns a map of only valid Role values. The names
// are the persisted group names.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:     "customer",
		RoleOrganization: "orgs",
		RoleStaff:        "staff",
	}
}

// RoleFromString parses a persisted or caller-supplied role name.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the persisted name of the role, or "unknown" for invalid
// values.
func (r Role) String() string {
	if name, ok := getValidRoleStrings()[r]; ok {
		return name
	}
	return "unknown"
}

// Validate checks that the Role is one of the three valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsStaff reports whether the role carries unrestricted authorization.
func (r Role) IsStaff() bool {
	return r == RoleStaff
}
