package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Simulation is the simulations table row. Resultados and Schedule map to
// JSONB columns and stay opaque end to end.
type Simulation struct {
	ID                 uuid.UUID       `db:"id"`
	ClientID           uuid.UUID       `db:"client_id"`
	UnitID             uuid.UUID       `db:"unit_id"`
	ConfigID           uuid.UUID       `db:"config_id"`
	Principal          decimal.Decimal `db:"principal"`
	PlazoMeses         int             `db:"plazo_meses"`
	TasaInput          decimal.Decimal `db:"tasa_input"`
	TasaTipo           string          `db:"tasa_tipo"`
	GraciaTipo         string          `db:"gracia_tipo"`
	GraciaMeses        int             `db:"gracia_meses"`
	CapitalizaEnGracia bool            `db:"capitaliza_en_gracia"`
	CreatedAt          time.Time       `db:"created_at"`
	Resultados         json.RawMessage `db:"resultados"`
	Schedule           json.RawMessage `db:"schedule"`
}
