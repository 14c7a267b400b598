package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Simulation records one loan simulation run. The foreign ids reference
// Client/Unit/Config rows but are not validated against them. Resultados
// and Schedule are opaque documents produced by the front-end's
// amortization engine; this layer stores them verbatim.
type Simulation struct {
	ID                 uuid.UUID       `json:"id"`
	ClientID           uuid.UUID       `json:"clientId"`
	UnitID             uuid.UUID       `json:"unitId"`
	ConfigID           uuid.UUID       `json:"configId"`
	Principal          decimal.Decimal `json:"principal"`
	PlazoMeses         int             `json:"plazoMeses"`
	TasaInput          decimal.Decimal `json:"tasaInput"`
	TasaTipo           TasaTipo        `json:"tasaTipo"`
	GraciaTipo         GraciaTipo      `json:"graciaTipo"`
	GraciaMeses        int             `json:"graciaMeses"`
	CapitalizaEnGracia bool            `json:"capitalizaEnGracia"`
	CreatedAt          time.Time       `json:"createdAt"`
	Resultados         json.RawMessage `json:"resultados"`
	Schedule           json.RawMessage `json:"schedule"`
}
