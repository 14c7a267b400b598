package repositories

// RepositoryProvider bundles the per-entity repositories for injection
// into the service layer.
type RepositoryProvider struct {
	ClientRepo     ClientRepository
	UnitRepo       UnitRepository
	ConfigRepo     ConfigRepository
	SimulationRepo SimulationRepository
	AuditRepo      AuditRepository
}
