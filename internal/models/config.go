package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Config is the configs table row. Enum columns store the enum names.
type Config struct {
	ID                 uuid.UUID       `db:"id"`
	Moneda             string          `db:"moneda"`
	TasaTipo           string          `db:"tasa_tipo"`
	EfectivaAnual      decimal.Decimal `db:"efectiva_anual"`
	GraciaTipo         string          `db:"gracia_tipo"`
	GraciaMeses        int             `db:"gracia_meses"`
	Entidad            string          `db:"entidad"`
	CapitalizaEnGracia bool            `db:"capitaliza_en_gracia"`
}
