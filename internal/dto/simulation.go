package dto

import (
	"encoding/json"
	"time"

	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SimulationRequest is the create payload for a simulation. Resultados and
// Schedule are opaque documents and round-trip verbatim. CreatedAt is
// server-assigned when omitted.
type SimulationRequest struct {
	ID                 *uuid.UUID         `json:"id"`
	ClientID           uuid.UUID          `json:"clientId"`
	UnitID             uuid.UUID          `json:"unitId"`
	ConfigID           uuid.UUID          `json:"configId"`
	Principal          decimal.Decimal    `json:"principal"`
	PlazoMeses         int                `json:"plazoMeses"`
	TasaInput          decimal.Decimal    `json:"tasaInput"`
	TasaTipo           *domain.TasaTipo   `json:"tasaTipo"`
	GraciaTipo         *domain.GraciaTipo `json:"graciaTipo"`
	GraciaMeses        int                `json:"graciaMeses"`
	CapitalizaEnGracia bool               `json:"capitalizaEnGracia"`
	CreatedAt          *time.Time         `json:"createdAt"`
	Resultados         json.RawMessage    `json:"resultados"`
	Schedule           json.RawMessage    `json:"schedule"`
}

// SimulationResponse is the wire representation of a simulation.
type SimulationResponse struct {
	ID                 uuid.UUID         `json:"id"`
	ClientID           uuid.UUID         `json:"clientId"`
	UnitID             uuid.UUID         `json:"unitId"`
	ConfigID           uuid.UUID         `json:"configId"`
	Principal          decimal.Decimal   `json:"principal"`
	PlazoMeses         int               `json:"plazoMeses"`
	TasaInput          decimal.Decimal   `json:"tasaInput"`
	TasaTipo           domain.TasaTipo   `json:"tasaTipo"`
	GraciaTipo         domain.GraciaTipo `json:"graciaTipo"`
	GraciaMeses        int               `json:"graciaMeses"`
	CapitalizaEnGracia bool              `json:"capitalizaEnGracia"`
	CreatedAt          time.Time         `json:"createdAt"`
	Resultados         json.RawMessage   `json:"resultados"`
	Schedule           json.RawMessage   `json:"schedule"`
}

// ToSimulationResponse converts a domain.Simulation to its wire representation.
func ToSimulationResponse(s *domain.Simulation) SimulationResponse {
	return SimulationResponse{
		ID:                 s.ID,
		ClientID:           s.ClientID,
		UnitID:             s.UnitID,
		ConfigID:           s.ConfigID,
		Principal:          s.Principal,
		PlazoMeses:         s.PlazoMeses,
		TasaInput:          s.TasaInput,
		TasaTipo:           s.TasaTipo,
		GraciaTipo:         s.GraciaTipo,
		GraciaMeses:        s.GraciaMeses,
		CapitalizaEnGracia: s.CapitalizaEnGracia,
		CreatedAt:          s.CreatedAt,
		Resultados:         s.Resultados,
		Schedule:           s.Schedule,
	}
}

// ToSimulationResponseList converts a slice of domain.Simulation.
func ToSimulationResponseList(sims []domain.Simulation) []SimulationResponse {
	out := make([]SimulationResponse, len(sims))
	for i := range sims {
		out[i] = ToSimulationResponse(&sims[i])
	}
	return out
}
