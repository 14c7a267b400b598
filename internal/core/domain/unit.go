package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Unit is a real-estate unit offered for financing.
type Unit struct {
	ID         uuid.UUID       `json:"id"`
	Proyecto   string          `json:"proyecto"`
	Torre      string          `json:"torre"`
	Unidad     string          `json:"unidad"`
	Moneda     Moneda          `json:"moneda"`
	Precio     decimal.Decimal `json:"precio"`
	PieInicial decimal.Decimal `json:"pieInicial"`
	Gastos     decimal.Decimal `json:"gastos"`
	Seguros    decimal.Decimal `json:"seguros"`
	Comisiones decimal.Decimal `json:"comisiones"`
	ImageURL   *string         `json:"imageUrl"`
}
