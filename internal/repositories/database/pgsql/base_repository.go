package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// BaseRepository provides common state for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// round2 normalizes a decimal to the NUMERIC(18,2) column scale before a
// write. Round is half away from zero, the same coercion Postgres applies,
// so stored and echoed values never disagree.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
