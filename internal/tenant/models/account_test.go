package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "barbershop/pkg/domain"
	dErrors "barbershop/pkg/domain-errors"
)

func TestNewAccount(t *testing.T) {
	now := time.Now()
	tenantID := id.NewTenantID()

	t.Run("owner belongs to a tenant", func(t *testing.T) {
		a, err := NewAccount(id.NewUserID(), tenantID, id.RoleTenantOwner, " Ana Souza ", " Ana@Example.com ", "11987654321", now)
		require.NoError(t, err)
		assert.Equal(t, id.RoleTenantOwner, a.Role())
		assert.Equal(t, "Ana Souza", a.Name)
		assert.Equal(t, "ana@example.com", a.Email)
		assert.Equal(t, "(11) 98765-4321", a.Phone)
		assert.Equal(t, tenantID, a.TenantID)
	})

	t.Run("phone is optional", func(t *testing.T) {
		a, err := NewAccount(id.NewUserID(), tenantID, id.RoleProfessional, "Bruno", "bruno@example.com", "", now)
		require.NoError(t, err)
		assert.Empty(t, a.Phone)
	})

	t.Run("super admin has no tenant", func(t *testing.T) {
		_, err := NewAccount(id.NewUserID(), tenantID, id.RoleSuperAdmin, "Root", "root@example.com", "", now)
		require.Error(t, err)

		a, err := NewAccount(id.NewUserID(), id.TenantID{}, id.RoleSuperAdmin, "Root", "root@example.com", "", now)
		require.NoError(t, err)
		assert.True(t, a.TenantID.IsNil())
	})

	tests := []struct {
		name     string
		userID   id.UserID
		tenantID id.TenantID
		role     id.Role
		fullName string
		email    string
		phone    string
	}{
		{"nil user", id.UserID{}, tenantID, id.RoleTenantOwner, "Ana", "ana@example.com", ""},
		{"unknown role", id.NewUserID(), tenantID, id.Role("manager"), "Ana", "ana@example.com", ""},
		{"tenant role without tenant", id.NewUserID(), id.TenantID{}, id.RoleProfessional, "Ana", "ana@example.com", ""},
		{"short name", id.NewUserID(), tenantID, id.RoleTenantOwner, "Al", "al@example.com", ""},
		{"bad email", id.NewUserID(), tenantID, id.RoleTenantOwner, "Ana", "ana@example", ""},
		{"bad phone", id.NewUserID(), tenantID, id.RoleTenantOwner, "Ana", "ana@example.com", "1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAccount(tt.userID, tt.tenantID, tt.role, tt.fullName, tt.email, tt.phone, now)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}
}

func TestAccountJSONIncludesRole(t *testing.T) {
	a, err := NewAccount(id.NewUserID(), id.NewTenantID(), id.RoleProfessional, "Bruno", "bruno@example.com", "", time.Now())
	require.NoError(t, err)

	body, err := json.Marshal(a)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "professional", decoded["role"])
	assert.Equal(t, "bruno@example.com", decoded["email"])
	assert.NotContains(t, decoded, "phone")
}

func TestAccountJSONRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("owner keeps role and tenant", func(t *testing.T) {
		a, err := NewAccount(id.NewUserID(), id.NewTenantID(), id.RoleTenantOwner, "Ana Souza", "ana@example.com", "11987654321", now)
		require.NoError(t, err)

		body, err := json.Marshal(a)
		require.NoError(t, err)

		var decoded Account
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Equal(t, *a, decoded)
		assert.Equal(t, id.RoleTenantOwner, decoded.Role())
	})

	t.Run("super admin without tenant", func(t *testing.T) {
		a, err := NewAccount(id.NewUserID(), id.TenantID{}, id.RoleSuperAdmin, "Root", "root@example.com", "", now)
		require.NoError(t, err)

		body, err := json.Marshal(a)
		require.NoError(t, err)

		var decoded Account
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Equal(t, id.RoleSuperAdmin, decoded.Role())
		assert.True(t, decoded.TenantID.IsNil())
	})

	for name, body := range map[string]string{
		"unknown role": `{"id":"7b0e0e8a-6f2b-4d7e-9a54-3f1c2a9d8e11","name":"Ana","email":"ana@example.com","role":"manager"}`,
		"missing role": `{"id":"7b0e0e8a-6f2b-4d7e-9a54-3f1c2a9d8e11","name":"Ana","email":"ana@example.com"}`,
	} {
		t.Run(name, func(t *testing.T) {
			var decoded Account
			err := json.Unmarshal([]byte(body), &decoded)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}
