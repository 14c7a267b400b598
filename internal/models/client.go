package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client is the clients table row.
type Client struct {
	ID                uuid.UUID       `db:"id"`
	Nombres           string          `db:"nombres"`
	Apellidos         string          `db:"apellidos"`
	Documento         string          `db:"documento"`
	Telefono          string          `db:"telefono"`
	Email             string          `db:"email"`
	IngresosMensuales decimal.Decimal `db:"ingresos_mensuales"`
	Dependientes      int             `db:"dependientes"`
	Empleo            string          `db:"empleo"`
}
