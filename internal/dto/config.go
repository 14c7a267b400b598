package dto

import (
	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConfigRequest is the create/replace payload for a rate configuration.
// Pointer fields distinguish omitted values from explicit zero values so
// that creation-time defaults (PEN, EFECTIVA, 12.5, NINGUNA) apply only
// when the field is absent.
type ConfigRequest struct {
	ID                 *uuid.UUID         `json:"id"`
	Moneda             *domain.Moneda     `json:"moneda"`
	TasaTipo           *domain.TasaTipo   `json:"tasaTipo"`
	EfectivaAnual      *decimal.Decimal   `json:"efectivaAnual"`
	GraciaTipo         *domain.GraciaTipo `json:"graciaTipo"`
	GraciaMeses        int                `json:"graciaMeses"`
	Entidad            string             `json:"entidad"`
	CapitalizaEnGracia bool               `json:"capitalizaEnGracia"`
}

// ConfigResponse is the wire representation of a rate configuration.
type ConfigResponse struct {
	ID                 uuid.UUID         `json:"id"`
	Moneda             domain.Moneda     `json:"moneda"`
	TasaTipo           domain.TasaTipo   `json:"tasaTipo"`
	EfectivaAnual      decimal.Decimal   `json:"efectivaAnual"`
	GraciaTipo         domain.GraciaTipo `json:"graciaTipo"`
	GraciaMeses        int               `json:"graciaMeses"`
	Entidad            string            `json:"entidad"`
	CapitalizaEnGracia bool              `json:"capitalizaEnGracia"`
}

// ToConfigResponse converts a domain.Config to its wire representation.
func ToConfigResponse(c *domain.Config) ConfigResponse {
	return ConfigResponse{
		ID:                 c.ID,
		Moneda:             c.Moneda,
		TasaTipo:           c.TasaTipo,
		EfectivaAnual:      c.EfectivaAnual,
		GraciaTipo:         c.GraciaTipo,
		GraciaMeses:        c.GraciaMeses,
		Entidad:            c.Entidad,
		CapitalizaEnGracia: c.CapitalizaEnGracia,
	}
}

// ToConfigResponseList converts a slice of domain.Config.
func ToConfigResponseList(configs []domain.Config) []ConfigResponse {
	out := make([]ConfigResponse, len(configs))
	for i := range configs {
		out[i] = ToConfigResponse(&configs[i])
	}
	return out
}
