package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Unit is the units table row. Moneda is stored as the enum name.
type Unit struct {
	ID         uuid.UUID       `db:"id"`
	Proyecto   string          `db:"proyecto"`
	Torre      string          `db:"torre"`
	Unidad     string          `db:"unidad"`
	Moneda     string          `db:"moneda"`
	Precio     decimal.Decimal `db:"precio"`
	PieInicial decimal.Decimal `db:"pie_inicial"`
	Gastos     decimal.Decimal `db:"gastos"`
	Seguros    decimal.Decimal `db:"seguros"`
	Comisiones decimal.Decimal `db:"comisiones"`
	ImageURL   *string         `db:"image_url"`
}
