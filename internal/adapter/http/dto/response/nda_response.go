package response

import (
	"time"

	"osms-portal/internal/domain/entities"
)

type NdaResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Company         string    `json:"company"`
	AcceptedVersion string    `json:"accepted_version,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromNda(n entities.Nda) NdaResponse {
	return NdaResponse{
		ID:              n.ID,
		Name:            n.Name,
		Email:           n.Email,
		Company:         n.Company,
		AcceptedVersion: n.AcceptedVersion,
		CreatedAt:       n.CreatedAt,
	}
}

func FromNdas(records []entities.Nda) []NdaResponse {
	out := make([]NdaResponse, 0, len(records))
	for _, n := range records {
		out = append(out, FromNda(n))
	}
	return out
}
