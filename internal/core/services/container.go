package services

import (
	portsrepo "github.com/creditapp/creditapp-api/internal/core/ports/repositories"
	portssvc "github.com/creditapp/creditapp-api/internal/core/ports/services"
)

// NewServiceContainer wires every entity service over the repository
// provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Client:     NewClientService(repos.ClientRepo),
		Unit:       NewUnitService(repos.UnitRepo),
		Config:     NewConfigService(repos.ConfigRepo),
		Simulation: NewSimulationService(repos.SimulationRepo),
		Audit:      NewAuditService(repos.AuditRepo),
	}
}
