package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
)

func TestScope_Allows(t *testing.T) {
	tests := []struct {
		name  string
		scope domain.Scope
		query string
		want  bool
	}{
		{"all grants anything", domain.ScopeAll(), "incidents", true},
		{"all grants admin too", domain.ScopeAll(), "admin", true},
		{"all-except blocks exception", domain.ScopeAllExcept("admin"), "admin", false},
		{"all-except grants the rest", domain.ScopeAllExcept("admin"), "incidents", true},
		{"all-except matches exception case-insensitively", domain.ScopeAllExcept("admin"), "Admin", false},
		{"explicit names grant member", domain.ScopeOf("incidents", "permits"), "permits", true},
		{"explicit names case-insensitive", domain.ScopeOf("incidents"), "Incidents", true},
		{"explicit names block non-member", domain.ScopeOf("incidents"), "capas", false},
		{"empty scope grants nothing", domain.ScopeNone(), "incidents", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scope.Allows(tt.query))
		})
	}
}

func TestScope_IsEmpty(t *testing.T) {
	assert.True(t, domain.ScopeNone().IsEmpty())
	assert.False(t, domain.ScopeAll().IsEmpty())
	assert.False(t, domain.ScopeAllExcept("admin").IsEmpty())
	assert.False(t, domain.ScopeOf("incidents").IsEmpty())
}

func TestPermissionTable_CoversAllRoles(t *testing.T) {
	for _, role := range domain.AllRoles {
		perms, ok := domain.PermissionTable[role]
		assert.True(t, ok, "role %s missing from permission table", role)
		assert.Equal(t, role, perms.Role)
		assert.NotEmpty(t, perms.Label)
	}
}
