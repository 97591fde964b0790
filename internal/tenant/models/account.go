package models

import (
	"encoding/json"
	"time"

	id "barbershop/pkg/domain"
	dErrors "barbershop/pkg/domain-errors"
	"barbershop/pkg/email"
	"barbershop/pkg/platform/validation"
)

// Account is a person who signs in: a platform super admin, a shop owner or a
// professional working at a shop.
//
// Invariants:
//   - Role is set once at construction; there is no setter
//   - Super admins have no tenant; every other role belongs to one
//   - Name, Email and Phone pass the field validators; Phone is stored formatted
type Account struct {
	ID        id.UserID   `json:"id"`
	TenantID  id.TenantID `json:"tenant_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	CreatedAt time.Time   `json:"created_at"`

	role id.Role
}

// NewAccount builds an account with its one and only role. Phone is optional.
func NewAccount(userID id.UserID, tenantID id.TenantID, role id.Role, name, address, phone string, now time.Time) (*Account, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user ID cannot be nil")
	}
	if !role.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "invalid role")
	}
	if role.IsPlatformWide() && !tenantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "super admin cannot belong to a tenant")
	}
	if !role.IsPlatformWide() && tenantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tenant role requires a tenant")
	}

	name = validation.TrimName(name)
	if !validation.IsValidName(name) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "account name must be at least 3 characters")
	}
	address = email.Normalize(address)
	if !validation.IsValidEmail(address) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "account email is invalid")
	}
	if phone != "" {
		if !validation.IsValidPhone(phone) {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "account phone is invalid")
		}
		phone = validation.FormatPhone(phone)
	}

	return &Account{
		ID:        userID,
		TenantID:  tenantID,
		Name:      name,
		Email:     address,
		Phone:     phone,
		CreatedAt: now,
		role:      role,
	}, nil
}

// Role returns the account's role.
func (a *Account) Role() id.Role {
	return a.role
}

// MarshalJSON includes the role alongside the exported fields.
func (a Account) MarshalJSON() ([]byte, error) {
	type plain Account
	return json.Marshal(struct {
		plain
		Role id.Role `json:"role"`
	}{plain: plain(a), Role: a.role})
}

// UnmarshalJSON restores an account written by MarshalJSON. The role goes
// through id.ParseRole, so unknown or missing roles are rejected.
func (a *Account) UnmarshalJSON(b []byte) error {
	type plain Account
	var decoded struct {
		plain
		Role string `json:"role"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	role, err := id.ParseRole(decoded.Role)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid account")
	}
	*a = Account(decoded.plain)
	a.role = role
	return nil
}
