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

type PgxConfigRepository struct {
	BaseRepository
}

func newPgxConfigRepository(pool *pgxpool.Pool) portsrepo.ConfigRepository {
	return &PgxConfigRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ConfigRepository = (*PgxConfigRepository)(nil)

func toModelConfig(d domain.Config) models.Config {
	return models.Config{
		ID:                 d.ID,
		Moneda:             string(d.Moneda),
		TasaTipo:           string(d.TasaTipo),
		EfectivaAnual:      round2(d.EfectivaAnual),
		GraciaTipo:         string(d.GraciaTipo),
		GraciaMeses:        d.GraciaMeses,
		Entidad:            d.Entidad,
		CapitalizaEnGracia: d.CapitalizaEnGracia,
	}
}

func toDomainConfig(m models.Config) domain.Config {
	return domain.Config{
		ID:                 m.ID,
		Moneda:             domain.Moneda(m.Moneda),
		TasaTipo:           domain.TasaTipo(m.TasaTipo),
		EfectivaAnual:      m.EfectivaAnual,
		GraciaTipo:         domain.GraciaTipo(m.GraciaTipo),
		GraciaMeses:        m.GraciaMeses,
		Entidad:            m.Entidad,
		CapitalizaEnGracia: m.CapitalizaEnGracia,
	}
}

func (r *PgxConfigRepository) SaveConfig(ctx context.Context, config domain.Config) error {
	m := toModelConfig(config)
	query := `
        INSERT INTO configs (id, moneda, tasa_tipo, efectiva_anual, gracia_tipo, gracia_meses, entidad, capitaliza_en_gracia)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.Moneda, m.TasaTipo, m.EfectivaAnual,
		m.GraciaTipo, m.GraciaMeses, m.Entidad, m.CapitalizaEnGracia,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: config with ID %s already exists", apperrors.ErrDuplicate, m.ID)
		}
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func (r *PgxConfigRepository) ListConfigs(ctx context.Context) ([]domain.Config, error) {
	query := `
        SELECT id, moneda, tasa_tipo, efectiva_anual, gracia_tipo, gracia_meses, entidad, capitaliza_en_gracia
        FROM configs;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query configs: %w", err)
	}
	defer rows.Close()

	configs := []domain.Config{}
	for rows.Next() {
		var m models.Config
		err := rows.Scan(
			&m.ID, &m.Moneda, &m.TasaTipo, &m.EfectivaAnual,
			&m.GraciaTipo, &m.GraciaMeses, &m.Entidad, &m.CapitalizaEnGracia,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan config row: %w", err)
		}
		configs = append(configs, toDomainConfig(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating config rows: %w", rows.Err())
	}
	return configs, nil
}

func (r *PgxConfigRepository) ReplaceConfig(ctx context.Context, config domain.Config) error {
	m := toModelConfig(config)
	query := `
        UPDATE configs
        SET moneda = $1, tasa_tipo = $2, efectiva_anual = $3, gracia_tipo = $4,
            gracia_meses = $5, entidad = $6, capitaliza_en_gracia = $7
        WHERE id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Moneda, m.TasaTipo, m.EfectivaAnual, m.GraciaTipo,
		m.GraciaMeses, m.Entidad, m.CapitalizaEnGracia, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to replace config: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxConfigRepository) DeleteConfig(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM configs WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete config: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
