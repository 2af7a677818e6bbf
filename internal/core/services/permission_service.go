package services

import (
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	portssvc "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/services"
)

// permissionService evaluates the static role permission matrix. All
// methods are pure and total: unknown roles degrade to false.
type permissionService struct {
	table map[domain.Role]domain.RolePermissions
}

// NewPermissionService creates a permission evaluator over the standard
// permission table.
func NewPermissionService() portssvc.PermissionSvcFacade {
	return &permissionService{table: domain.PermissionTable}
}

// NewPermissionServiceWithTable creates an evaluator over a custom table.
// The admin/safety_officer override applies regardless of table contents.
func NewPermissionServiceWithTable(table map[domain.Role]domain.RolePermissions) portssvc.PermissionSvcFacade {
	return &permissionService{table: table}
}

var _ portssvc.PermissionSvcFacade = (*permissionService)(nil)

// Allows is the single matrix evaluator: role x action x name -> bool.
// admin is universally authorized; safety_officer is universally authorized
// for everything except delete, which keeps its own coarse rule.
func (s *permissionService) Allows(role domain.Role, action domain.Action, name string) bool {
	perms, ok := s.table[role]
	if !ok {
		return false
	}
	if role == domain.RoleAdmin {
		return true
	}
	if role == domain.RoleSafetyOfficer && action != domain.ActionDelete {
		return true
	}
	return perms.Scope(action).Allows(name)
}

// CanViewModule reports whether the role may see the named module.
func (s *permissionService) CanViewModule(role domain.Role, module string) bool {
	return s.Allows(role, domain.ActionView, module)
}

// CanCreateRecord reports whether the role may create records of the type.
func (s *permissionService) CanCreateRecord(role domain.Role, recordType domain.RecordType) bool {
	return s.Allows(role, domain.ActionCreate, string(recordType))
}

// CanDeleteRecord reports whether the role may delete records at all.
// admin is unconditional; otherwise the check is list non-emptiness, not
// membership of a specific record type.
func (s *permissionService) CanDeleteRecord(role domain.Role) bool {
	perms, ok := s.table[role]
	if !ok {
		return false
	}
	if role == domain.RoleAdmin {
		return true
	}
	return !perms.Scope(domain.ActionDelete).IsEmpty()
}

// CanApprove reports whether the role may approve the named workflow type.
func (s *permissionService) CanApprove(role domain.Role, workflowType string) bool {
	return s.Allows(role, domain.ActionApprove, workflowType)
}
