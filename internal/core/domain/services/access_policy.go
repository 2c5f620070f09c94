package services

import (
	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Action enumerates the operations the access policy rules on.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	ActionCreateOrder
	ActionUpdateOrder
	ActionCreateService
	ActionCreateProduct
	ActionUpdateProduct
	ActionUpdateProfile
	ActionChangePassword
	ActionActivateAccount
	ActionViewIdentity
	ActionListIdentities
)

// RestrictedField names the system-computed fields a request may attempt to
// write directly. Non-staff writes to any of them are denied.
type RestrictedField int

const (
	// FieldStatus is the lifecycle status of an order or service.
	FieldStatus RestrictedField = iota + 1

	// FieldTotalPrice is the derived total price of an order.
	FieldTotalPrice

	// FieldUnits is the derived billable unit count of a service.
	FieldUnits
)

// String returns a short field name for deny reasons.
func (f RestrictedField) String() string {
	switch f {
	case FieldStatus:
		return "status"
	case FieldTotalPrice:
		return "total_price"
	case FieldUnits:
		return "units"
	default:
		return "unknown"
	}
}

// staffOnlyActions may never be performed by non-staff, regardless of
// ownership.
func staffOnlyActions() map[Action]struct{} {
	return map[Action]struct{}{
		ActionCreateProduct:  {},
		ActionUpdateProduct:  {},
		ActionListIdentities: {},
	}
}

// AccessPolicy is the pure authorization function mapping (actor, action,
// target ownership, requested restricted fields) to allow or deny. It is
// queried before every mutating command; a deny propagates to the caller
// as a ForbiddenError and the command performs no mutation.
//
// Rules, evaluated in order:
//   - Staff is always allowed, including writes to restricted fields.
//   - Non-staff acting on their own resources are allowed, but any write
//     to a restricted field is denied.
//   - Non-staff acting on another identity's resources are denied. The one
//     exception, organizations registering customers, is ruled on by
//     AuthorizeRegister.
type AccessPolicy struct{}

// NewAccessPolicy creates an access policy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize decides whether actor may perform action on a resource owned by
// ownerID, optionally requesting direct writes to restricted fields.
func (p AccessPolicy) Authorize(
	actor identity.Actor,
	action Action,
	ownerID kernel.UUID,
	requestedFields ...RestrictedField,
) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.IsStaff() {
		return nil
	}

	if _, staffOnly := staffOnlyActions()[action]; staffOnly {
		return errs.NewForbiddenError("you don't have permissions to do this")
	}

	if !actor.Owns(ownerID) {
		return errs.NewForbiddenError("not authorized")
	}

	if len(requestedFields) > 0 {
		return errs.NewForbiddenError(
			"field " + requestedFields[0].String() + " is system-computed and cannot be set directly")
	}

	return nil
}

// AuthorizeRegister decides whether actor may register a new identity with
// the given role. Staff may register any role; an organization may register
// customers, and only that pairing; everything else is denied.
func (p AccessPolicy) AuthorizeRegister(actor identity.Actor, targetRole identity.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := targetRole.Validate(); err != nil {
		return err
	}

	if actor.IsStaff() {
		return nil
	}

	if actor.Role() == identity.RoleOrganization && targetRole == identity.RoleCustomer {
		return nil
	}

	return errs.NewForbiddenError("not allowed to create this type of identity")
}
