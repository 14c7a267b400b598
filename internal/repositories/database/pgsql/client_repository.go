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

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

func toModelClient(d domain.Client) models.Client {
	return models.Client{
		ID:                d.ID,
		Nombres:           d.Nombres,
		Apellidos:         d.Apellidos,
		Documento:         d.Documento,
		Telefono:          d.Telefono,
		Email:             d.Email,
		IngresosMensuales: round2(d.IngresosMensuales),
		Dependientes:      d.Dependientes,
		Empleo:            d.Empleo,
	}
}

func toDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ID:                m.ID,
		Nombres:           m.Nombres,
		Apellidos:         m.Apellidos,
		Documento:         m.Documento,
		Telefono:          m.Telefono,
		Email:             m.Email,
		IngresosMensuales: m.IngresosMensuales,
		Dependientes:      m.Dependientes,
		Empleo:            m.Empleo,
	}
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
        INSERT INTO clients (id, nombres, apellidos, documento, telefono, email, ingresos_mensuales, dependientes, empleo)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.Nombres, m.Apellidos, m.Documento, m.Telefono, m.Email,
		m.IngresosMensuales, m.Dependientes, m.Empleo,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: client with ID %s already exists", apperrors.ErrDuplicate, m.ID)
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `
        SELECT id, nombres, apellidos, documento, telefono, email, ingresos_mensuales, dependientes, empleo
        FROM clients
        WHERE id = $1;
    `
	var m models.Client
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Nombres, &m.Apellidos, &m.Documento, &m.Telefono, &m.Email,
		&m.IngresosMensuales, &m.Dependientes, &m.Empleo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", id, err)
	}
	d := toDomainClient(m)
	return &d, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `
        SELECT id, nombres, apellidos, documento, telefono, email, ingresos_mensuales, dependientes, empleo
        FROM clients;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var m models.Client
		err := rows.Scan(
			&m.ID, &m.Nombres, &m.Apellidos, &m.Documento, &m.Telefono, &m.Email,
			&m.IngresosMensuales, &m.Dependientes, &m.Empleo,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, toDomainClient(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}
	return clients, nil
}

func (r *PgxClientRepository) ReplaceClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
        UPDATE clients
        SET nombres = $1, apellidos = $2, documento = $3, telefono = $4, email = $5,
            ingresos_mensuales = $6, dependientes = $7, empleo = $8
        WHERE id = $9;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Nombres, m.Apellidos, m.Documento, m.Telefono, m.Email,
		m.IngresosMensuales, m.Dependientes, m.Empleo, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to replace client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
