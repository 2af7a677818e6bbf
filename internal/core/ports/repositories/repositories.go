package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container, so wiring code passes one value instead of three.
type RepositoryProvider struct {
	RecordRepo RecordRepository
	AuditRepo  AuditLogRepository
	LinkRepo   LinkRepository
}
