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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUnitRepository struct {
	BaseRepository
}

func newPgxUnitRepository(pool *pgxpool.Pool) portsrepo.UnitRepository {
	return &PgxUnitRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitRepository = (*PgxUnitRepository)(nil)

func toModelUnit(d domain.Unit) models.Unit {
	return models.Unit{
		ID:         d.ID,
		Proyecto:   d.Proyecto,
		Torre:      d.Torre,
		Unidad:     d.Unidad,
		Moneda:     string(d.Moneda),
		Precio:     round2(d.Precio),
		PieInicial: round2(d.PieInicial),
		Gastos:     round2(d.Gastos),
		Seguros:    round2(d.Seguros),
		Comisiones: round2(d.Comisiones),
		ImageURL:   d.ImageURL,
	}
}

func toDomainUnit(m models.Unit) domain.Unit {
	return domain.Unit{
		ID:         m.ID,
		Proyecto:   m.Proyecto,
		Torre:      m.Torre,
		Unidad:     m.Unidad,
		Moneda:     domain.Moneda(m.Moneda),
		Precio:     m.Precio,
		PieInicial: m.PieInicial,
		Gastos:     m.Gastos,
		Seguros:    m.Seguros,
		Comisiones: m.Comisiones,
		ImageURL:   m.ImageURL,
	}
}

func (r *PgxUnitRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	m := toModelUnit(unit)
	query := `
        INSERT INTO units (id, proyecto, torre, unidad, moneda, precio, pie_inicial, gastos, seguros, comisiones, image_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.Proyecto, m.Torre, m.Unidad, m.Moneda,
		m.Precio, m.PieInicial, m.Gastos, m.Seguros, m.Comisiones, m.ImageURL,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: unit with ID %s already exists", apperrors.ErrDuplicate, m.ID)
		}
		return fmt.Errorf("failed to save unit: %w", err)
	}
	return nil
}

func (r *PgxUnitRepository) FindUnitByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	query := `
        SELECT id, proyecto, torre, unidad, moneda, precio, pie_inicial, gastos, seguros, comisiones, image_url
        FROM units
        WHERE id = $1;
    `
	var m models.Unit
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Proyecto, &m.Torre, &m.Unidad, &m.Moneda,
		&m.Precio, &m.PieInicial, &m.Gastos, &m.Seguros, &m.Comisiones, &m.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find unit by ID %s: %w", id, err)
	}
	d := toDomainUnit(m)
	return &d, nil
}

func (r *PgxUnitRepository) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	query := `
        SELECT id, proyecto, torre, unidad, moneda, precio, pie_inicial, gastos, seguros, comisiones, image_url
        FROM units;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer rows.Close()

	units := []domain.Unit{}
	for rows.Next() {
		var m models.Unit
		err := rows.Scan(
			&m.ID, &m.Proyecto, &m.Torre, &m.Unidad, &m.Moneda,
			&m.Precio, &m.PieInicial, &m.Gastos, &m.Seguros, &m.Comisiones, &m.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit row: %w", err)
		}
		units = append(units, toDomainUnit(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating unit rows: %w", rows.Err())
	}
	return units, nil
}

func (r *PgxUnitRepository) ReplaceUnit(ctx context.Context, unit domain.Unit) error {
	m := toModelUnit(unit)
	query := `
        UPDATE units
        SET proyecto = $1, torre = $2, unidad = $3, moneda = $4, precio = $5,
            pie_inicial = $6, gastos = $7, seguros = $8, comisiones = $9, image_url = $10
        WHERE id = $11;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Proyecto, m.Torre, m.Unidad, m.Moneda, m.Precio,
		m.PieInicial, m.Gastos, m.Seguros, m.Comisiones, m.ImageURL, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to replace unit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUnitRepository) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM units WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
