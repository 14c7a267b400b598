package dto

import (
	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitRequest is the create/replace payload for a unit. Moneda is a
// pointer to distinguish an omitted field (defaults to PEN) from an
// explicit value.
type UnitRequest struct {
	ID         *uuid.UUID      `json:"id"`
	Proyecto   string          `json:"proyecto"`
	Torre      string          `json:"torre"`
	Unidad     string          `json:"unidad"`
	Moneda     *domain.Moneda  `json:"moneda"`
	Precio     decimal.Decimal `json:"precio"`
	PieInicial decimal.Decimal `json:"pieInicial"`
	Gastos     decimal.Decimal `json:"gastos"`
	Seguros    decimal.Decimal `json:"seguros"`
	Comisiones decimal.Decimal `json:"comisiones"`
	ImageURL   *string         `json:"imageUrl"`
}

// UnitResponse is the wire representation of a unit.
type UnitResponse struct {
	ID         uuid.UUID       `json:"id"`
	Proyecto   string          `json:"proyecto"`
	Torre      string          `json:"torre"`
	Unidad     string          `json:"unidad"`
	Moneda     domain.Moneda   `json:"moneda"`
	Precio     decimal.Decimal `json:"precio"`
	PieInicial decimal.Decimal `json:"pieInicial"`
	Gastos     decimal.Decimal `json:"gastos"`
	Seguros    decimal.Decimal `json:"seguros"`
	Comisiones decimal.Decimal `json:"comisiones"`
	ImageURL   *string         `json:"imageUrl"`
}

// ToUnitResponse converts a domain.Unit to its wire representation.
func ToUnitResponse(u *domain.Unit) UnitResponse {
	return UnitResponse{
		ID:         u.ID,
		Proyecto:   u.Proyecto,
		Torre:      u.Torre,
		Unidad:     u.Unidad,
		Moneda:     u.Moneda,
		Precio:     u.Precio,
		PieInicial: u.PieInicial,
		Gastos:     u.Gastos,
		Seguros:    u.Seguros,
		Comisiones: u.Comisiones,
		ImageURL:   u.ImageURL,
	}
}

// ToUnitResponseList converts a slice of domain.Unit.
func ToUnitResponseList(units []domain.Unit) []UnitResponse {
	out := make([]UnitResponse, len(units))
	for i := range units {
		out[i] = ToUnitResponse(&units[i])
	}
	return out
}
