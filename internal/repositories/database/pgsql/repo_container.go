package pgsql

import (
	portsrepo "github.com/creditapp/creditapp-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository over the shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:     newPgxClientRepository(pool),
		UnitRepo:       newPgxUnitRepository(pool),
		ConfigRepo:     newPgxConfigRepository(pool),
		SimulationRepo: newPgxSimulationRepository(pool),
		AuditRepo:      newPgxAuditRepository(pool),
	}
}
