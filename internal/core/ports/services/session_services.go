package services

import "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"

// SessionSvc holds the session's simulated role. One instance is owned by
// the service container per session; there is no persistence beyond the
// running process.
type SessionSvc interface {
	// CurrentRole returns the role the session is simulating.
	CurrentRole() domain.Role

	// SetCurrentRole switches the simulated role. Fails with
	// apperrors.ErrValidation for unknown roles.
	SetCurrentRole(role domain.Role) error
}
