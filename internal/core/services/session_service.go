package services

import (
	"fmt"
	"sync"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/apperrors"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	portssvc "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/services"
)

// sessionService holds the session's simulated role. Owned by the service
// container, one per session; no module-level global state.
type sessionService struct {
	mu   sync.RWMutex
	role domain.Role
}

// NewSessionService creates a session starting in the given role. Unknown
// roles fall back to admin, matching the session default.
func NewSessionService(initial domain.Role) portssvc.SessionSvc {
	if !initial.IsValid() {
		initial = domain.RoleAdmin
	}
	return &sessionService{role: initial}
}

var _ portssvc.SessionSvc = (*sessionService)(nil)

// CurrentRole returns the role the session is simulating.
func (s *sessionService) CurrentRole() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// SetCurrentRole switches the simulated role.
func (s *sessionService) SetCurrentRole(role domain.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
	return nil
}
