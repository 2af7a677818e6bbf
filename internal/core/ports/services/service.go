package services

// ServiceContainer holds all service facades, wired once per session.
type ServiceContainer struct {
	Workflow   WorkflowSvcFacade
	Permission PermissionSvcFacade
	LinkGraph  LinkGraphSvcFacade
	Audit      AuditSvcFacade
	Record     RecordSvcFacade
	Session    SessionSvc
}
