package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
)

func TestTransitionTable_WellFormed(t *testing.T) {
	for from, transitions := range domain.TransitionTable {
		assert.True(t, from.IsValid(), "unknown source status %s", from)
		assert.NotEmpty(t, transitions, "status %s has an empty transition list", from)
		for _, tr := range transitions {
			assert.True(t, tr.To.IsValid(), "%s -> %s targets an unknown status", from, tr.To)
			assert.NotEmpty(t, tr.Label)
			assert.NotEmpty(t, tr.AllowedRoles, "%s -> %s has no allowed roles", from, tr.To)
			for _, role := range tr.AllowedRoles {
				assert.True(t, role.IsValid(), "%s -> %s allows unknown role %s", from, tr.To, role)
			}
		}
	}
}

func TestTransitionTable_ArchivedIsTerminal(t *testing.T) {
	_, exists := domain.TransitionTable[domain.StatusArchived]
	assert.False(t, exists, "archived must have no outgoing transitions")
}

func TestWorkflowTransition_RoleAllowed(t *testing.T) {
	tr := domain.WorkflowTransition{
		To:           domain.StatusSubmitted,
		AllowedRoles: []domain.Role{domain.RoleSupervisor, domain.RoleAdmin},
	}

	assert.True(t, tr.RoleAllowed(domain.RoleSupervisor))
	assert.True(t, tr.RoleAllowed(domain.RoleAdmin))
	assert.False(t, tr.RoleAllowed(domain.RoleContractor))
	assert.False(t, tr.RoleAllowed(domain.Role("ghost")))
}
