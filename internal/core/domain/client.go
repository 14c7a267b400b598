package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client is a prospective borrower captured by the front-end.
type Client struct {
	ID                uuid.UUID       `json:"id"`
	Nombres           string          `json:"nombres"`
	Apellidos         string          `json:"apellidos"`
	Documento         string          `json:"documento"`
	Telefono          string          `json:"telefono"`
	Email             string          `json:"email"`
	IngresosMensuales decimal.Decimal `json:"ingresosMensuales"`
	Dependientes      int             `json:"dependientes"`
	Empleo            string          `json:"empleo"`
}
