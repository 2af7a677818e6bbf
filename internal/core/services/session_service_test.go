package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/apperrors"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/services"
)

func TestSessionService_DefaultRole(t *testing.T) {
	session := services.NewSessionService(domain.RoleSupervisor)
	assert.Equal(t, domain.RoleSupervisor, session.CurrentRole())
}

func TestSessionService_UnknownInitialRoleFallsBackToAdmin(t *testing.T) {
	session := services.NewSessionService(domain.Role("intern"))
	assert.Equal(t, domain.RoleAdmin, session.CurrentRole())
}

func TestSessionService_SetCurrentRole(t *testing.T) {
	session := services.NewSessionService(domain.RoleAdmin)

	require.NoError(t, session.SetCurrentRole(domain.RoleContractor))
	assert.Equal(t, domain.RoleContractor, session.CurrentRole())
}

func TestSessionService_SetCurrentRole_Unknown(t *testing.T) {
	session := services.NewSessionService(domain.RoleAdmin)

	err := session.SetCurrentRole(domain.Role("intern"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, domain.RoleAdmin, session.CurrentRole())
}
