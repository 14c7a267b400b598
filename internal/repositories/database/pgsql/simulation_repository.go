package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/creditapp/creditapp-api/internal/apperrors"
	"github.com/creditapp/creditapp-api/internal/core/domain"
	portsrepo "github.com/creditapp/creditapp-api/internal/core/ports/repositories"
	"github.com/creditapp/creditapp-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSimulationRepository struct {
	BaseRepository
}

func newPgxSimulationRepository(pool *pgxpool.Pool) portsrepo.SimulationRepository {
	return &PgxSimulationRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SimulationRepository = (*PgxSimulationRepository)(nil)

func toModelSimulation(d domain.Simulation) models.Simulation {
	return models.Simulation{
		ID:                 d.ID,
		ClientID:           d.ClientID,
		UnitID:             d.UnitID,
		ConfigID:           d.ConfigID,
		Principal:          round2(d.Principal),
		PlazoMeses:         d.PlazoMeses,
		TasaInput:          round2(d.TasaInput),
		TasaTipo:           string(d.TasaTipo),
		GraciaTipo:         string(d.GraciaTipo),
		GraciaMeses:        d.GraciaMeses,
		CapitalizaEnGracia: d.CapitalizaEnGracia,
		CreatedAt:          d.CreatedAt,
		Resultados:         d.Resultados,
		Schedule:           d.Schedule,
	}
}

func toDomainSimulation(m models.Simulation) domain.Simulation {
	return domain.Simulation{
		ID:                 m.ID,
		ClientID:           m.ClientID,
		UnitID:             m.UnitID,
		ConfigID:           m.ConfigID,
		Principal:          m.Principal,
		PlazoMeses:         m.PlazoMeses,
		TasaInput:          m.TasaInput,
		TasaTipo:           domain.TasaTipo(m.TasaTipo),
		GraciaTipo:         domain.GraciaTipo(m.GraciaTipo),
		GraciaMeses:        m.GraciaMeses,
		CapitalizaEnGracia: m.CapitalizaEnGracia,
		CreatedAt:          m.CreatedAt,
		Resultados:         m.Resultados,
		Schedule:           m.Schedule,
	}
}

func (r *PgxSimulationRepository) SaveSimulation(ctx context.Context, sim domain.Simulation) error {
	m := toModelSimulation(sim)
	query := `
        INSERT INTO simulations (id, client_id, unit_id, config_id, principal, plazo_meses, tasa_input,
                                 tasa_tipo, gracia_tipo, gracia_meses, capitaliza_en_gracia, created_at,
                                 resultados, schedule)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.ClientID, m.UnitID, m.ConfigID, m.Principal, m.PlazoMeses, m.TasaInput,
		m.TasaTipo, m.GraciaTipo, m.GraciaMeses, m.CapitalizaEnGracia, m.CreatedAt,
		m.Resultados, m.Schedule,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: simulation with ID %s already exists", apperrors.ErrDuplicate, m.ID)
		}
		return fmt.Errorf("failed to save simulation: %w", err)
	}
	return nil
}

func (r *PgxSimulationRepository) ListSimulations(ctx context.Context) ([]domain.Simulation, error) {
	query := `
        SELECT id, client_id, unit_id, config_id, principal, plazo_meses, tasa_input,
               tasa_tipo, gracia_tipo, gracia_meses, capitaliza_en_gracia, created_at,
               resultados, schedule
        FROM simulations;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulations: %w", err)
	}
	defer rows.Close()

	sims := []domain.Simulation{}
	for rows.Next() {
		var m models.Simulation
		err := rows.Scan(
			&m.ID, &m.ClientID, &m.UnitID, &m.ConfigID, &m.Principal, &m.PlazoMeses, &m.TasaInput,
			&m.TasaTipo, &m.GraciaTipo, &m.GraciaMeses, &m.CapitalizaEnGracia, &m.CreatedAt,
			&m.Resultados, &m.Schedule,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan simulation row: %w", err)
		}
		sims = append(sims, toDomainSimulation(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating simulation rows: %w", rows.Err())
	}
	return sims, nil
}

func (r *PgxSimulationRepository) DeleteSimulation(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM simulations WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete simulation: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
