package services

import (
	portsrepo "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/repositories"
	portssvc "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/services"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. Construct one per session and discard it on
// session end.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Permission = NewPermissionService()
	container.Workflow = NewWorkflowService(repos.RecordRepo, repos.AuditRepo)
	container.Audit = NewAuditService(repos.AuditRepo, cfg.AuditPageSize)
	container.LinkGraph = NewLinkService(repos.LinkRepo)

	container.Record = NewRecordService(
		repos.RecordRepo,
		container.Permission,
		container.Workflow,
		container.Audit,
		container.LinkGraph,
		WithLinkAutoMirror(cfg.LinkAutoMirror),
	)

	container.Session = NewSessionService(cfg.DefaultRole)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.WorkflowSvcFacade   = (*workflowService)(nil)
	_ portssvc.PermissionSvcFacade = (*permissionService)(nil)
	_ portssvc.LinkGraphSvcFacade  = (*linkService)(nil)
	_ portssvc.AuditSvcFacade      = (*auditService)(nil)
	_ portssvc.RecordSvcFacade     = (*recordService)(nil)
	_ portssvc.SessionSvc          = (*sessionService)(nil)
)
