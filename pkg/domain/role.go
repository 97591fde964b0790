package domain

import dErrors "barbershop/pkg/domain-errors"

// Role is the permission class of an account.
// Invariant: the value is one of the supported roles; an account holds exactly one.
//
// Usage: construct via ParseRole at trust boundaries; direct casting bypasses
// validation.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleTenantOwner  Role = "owner"
	RoleProfessional Role = "professional"
)

var validRoles = map[Role]bool{
	RoleSuperAdmin:   true,
	RoleTenantOwner:  true,
	RoleProfessional: true,
}

// ParseRole constructs a Role from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "role cannot be empty")
	}
	r := Role(s)
	if !r.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid role")
	}
	return r, nil
}

// IsValid checks if the role is one of the supported enum values.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// IsPlatformWide reports whether the role spans all tenants.
func (r Role) IsPlatformWide() bool {
	return r == RoleSuperAdmin
}

func (r Role) String() string {
	return string(r)
}

// Roles returns every supported role.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleTenantOwner, RoleProfessional}
}
