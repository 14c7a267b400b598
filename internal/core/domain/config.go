package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Config is an interest-rate configuration. Its defaults encode the
// business policy in effect at creation time.
type Config struct {
	ID                 uuid.UUID       `json:"id"`
	Moneda             Moneda          `json:"moneda"`
	TasaTipo           TasaTipo        `json:"tasaTipo"`
	EfectivaAnual      decimal.Decimal `json:"efectivaAnual"`
	GraciaTipo         GraciaTipo      `json:"graciaTipo"`
	GraciaMeses        int             `json:"graciaMeses"`
	Entidad            string          `json:"entidad"`
	CapitalizaEnGracia bool            `json:"capitalizaEnGracia"`
}

// NewConfig returns a Config carrying the creation-time defaults.
func NewConfig() Config {
	return Config{
		Moneda:             MonedaPEN,
		TasaTipo:           TasaEfectiva,
		EfectivaAnual:      decimal.NewFromFloat(12.5),
		GraciaTipo:         GraciaNinguna,
		GraciaMeses:        0,
		Entidad:            "",
		CapitalizaEnGracia: false,
	}
}
