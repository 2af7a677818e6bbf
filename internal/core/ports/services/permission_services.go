package services

import "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"

// PermissionSvcFacade evaluates the static role permission matrix. All
// methods are pure, total functions: unknown roles or names degrade to
// false, never an error.
type PermissionSvcFacade interface {
	// Allows is the single matrix evaluator behind the Can* helpers:
	// role x action x name -> bool.
	Allows(role domain.Role, action domain.Action, name string) bool

	// CanViewModule reports whether the role may see the named module.
	// admin and safety_officer are always authorized.
	CanViewModule(role domain.Role, module string) bool

	// CanCreateRecord reports whether the role may create records of the
	// given type. admin and safety_officer are always authorized.
	CanCreateRecord(role domain.Role, recordType domain.RecordType) bool

	// CanDeleteRecord reports whether the role may delete records at all.
	// admin is unconditionally authorized; otherwise true iff the role's
	// delete list is non-empty. Deliberately coarse: it does not check a
	// specific record type.
	CanDeleteRecord(role domain.Role) bool

	// CanApprove reports whether the role may approve the named workflow
	// type. admin and safety_officer are always authorized.
	CanApprove(role domain.Role, workflowType string) bool
}
