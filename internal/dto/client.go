package dto

import (
	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientRequest is the create/replace payload for a client. The id is
// optional on create; on replace the path id always wins.
type ClientRequest struct {
	ID                *uuid.UUID      `json:"id"`
	Nombres           string          `json:"nombres"`
	Apellidos         string          `json:"apellidos"`
	Documento         string          `json:"documento"`
	Telefono          string          `json:"telefono"`
	Email             string          `json:"email"`
	IngresosMensuales decimal.Decimal `json:"ingresosMensuales"`
	Dependientes      int             `json:"dependientes"`
	Empleo            string          `json:"empleo"`
}

// ClientResponse is the wire representation of a client.
type ClientResponse struct {
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

// ToClientResponse converts a domain.Client to its wire representation.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:                c.ID,
		Nombres:           c.Nombres,
		Apellidos:         c.Apellidos,
		Documento:         c.Documento,
		Telefono:          c.Telefono,
		Email:             c.Email,
		IngresosMensuales: c.IngresosMensuales,
		Dependientes:      c.Dependientes,
		Empleo:            c.Empleo,
	}
}

// ToClientResponseList converts a slice of domain.Client.
func ToClientResponseList(clients []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out
}
