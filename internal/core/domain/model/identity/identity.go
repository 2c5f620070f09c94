package identity

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrIdentityIsNotConstructed is returned when an Identity instance was not
// created through NewIdentity or RestoreIdentity.
var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

// Identity is the aggregate root for an authenticated account: customer,
// organization, or staff. Credential verification (token issuance) is an
// external concern; this aggregate only holds the password hash needed for
// proof-of-possession checks on self-service operations.
type Identity struct {
	id           kernel.UUID
	username     string
	email        string
	firstName    string
	lastName     string
	role         Role
	passwordHash string
	isActive     bool
	version      int

	isConstructed bool
}

// NewIdentity creates an active Identity with the given role and bcrypt
// password hash.
func NewIdentity(
	id kernel.UUID,
	username, email, firstName, lastName string,
	role Role,
	passwordHash string,
) (*Identity, error) {
	i := &Identity{
		isActive:      true,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		i.setID(id),
		i.setRole(role),
		i.setPasswordHash(passwordHash),
		i.UpdateProfile(username, email, firstName, lastName),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// RestoreIdentity reconstructs an Identity from persistence.
func RestoreIdentity(
	id kernel.UUID,
	username, email, firstName, lastName string,
	role Role,
	passwordHash string,
	isActive bool,
	version int,
) (*Identity, error) {
	i := &Identity{
		isActive:      isActive,
		isConstructed: true,
	}

	if err := errors.Join(
		i.setID(id),
		i.setRole(role),
		i.setPasswordHash(passwordHash),
		i.UpdateProfile(username, email, firstName, lastName),
		i.setVersion(version),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// Validate ensures the Identity instance was properly constructed.
func (i *Identity) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIdentityIsNotConstructed
	}

	return nil
}

// ID returns the identity's unique identifier.
func (i *Identity) ID() kernel.UUID {
	return i.id
}

// Username returns the login name.
func (i *Identity) Username() string {
	return i.username
}

// Email returns the contact address notifications are sent to.
func (i *Identity) Email() string {
	return i.email
}

// FirstName returns the given name.
func (i *Identity) FirstName() string {
	return i.firstName
}

// LastName returns the family name.
func (i *Identity) LastName() string {
	return i.lastName
}

// Role returns the authorization role.
func (i *Identity) Role() Role {
	return i.role
}

// PasswordHash returns the stored bcrypt hash.
func (i *Identity) PasswordHash() string {
	return i.passwordHash
}

// IsActive reports whether the account is active.
func (i *Identity) IsActive() bool {
	return i.isActive
}

// Version returns the optimistic-concurrency version of the aggregate.
func (i *Identity) Version() int {
	return i.version
}

// Actor returns the authorization snapshot of this identity for threading
// through the access policy and command handlers.
func (i *Identity) Actor() Actor {
	actor, _ := NewActor(i.id, i.role, i.isActive)
	return actor
}

// UpdateProfile replaces username, email, and name fields. All four are
// required; the email must look like an address.
func (i *Identity) UpdateProfile(username, email, firstName, lastName string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	i.username = username
	i.email = email
	i.firstName = firstName
	i.lastName = lastName
	return nil
}

// ChangePassword replaces the stored bcrypt hash.
func (i *Identity) ChangePassword(passwordHash string) error {
	return i.setPasswordHash(passwordHash)
}

// SetActive flips the account's active flag.
func (i *Identity) SetActive(active bool) {
	i.isActive = active
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}
	return nil
}

func (i *Identity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Identity) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	i.role = role
	return nil
}

func (i *Identity) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	i.passwordHash = passwordHash
	return nil
}

func (i *Identity) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidError("version must be greater than 0")
	}
	i.version = version
	return nil
}
