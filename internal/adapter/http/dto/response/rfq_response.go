package response

import (
	"time"

	"osms-portal/internal/domain/entities"
)

// RfqResponse is the customer-facing view of an RFQ. The vendor unit price is
// deliberately absent; only the marked-up customer price leaves the service.
type RfqResponse struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	StatusLabel       string    `json:"status_label"`
	ProjectName       string    `json:"project_name"`
	Company           string    `json:"company"`
	ContactName       string    `json:"contact_name"`
	ContactEmail      string    `json:"contact_email"`
	Country           string    `json:"country,omitempty"`
	Quantity          *int      `json:"quantity,omitempty"`
	Material          string    `json:"material,omitempty"`
	Stage             string    `json:"stage,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CustomerUnitPrice *float64  `json:"customer_unit_price,omitempty"`
	Currency          string    `json:"currency,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromRfq(r entities.Rfq) RfqResponse {
	var quantity *int
	if r.Quantity != entities.QuantityUnknown {
		q := r.Quantity
		quantity = &q
	}
	return RfqResponse{
		ID:                r.ID,
		Status:            string(r.Status),
		StatusLabel:       r.Status.Label(),
		ProjectName:       r.ProjectName,
		Company:           r.Company,
		ContactName:       r.ContactName,
		ContactEmail:      r.ContactEmail,
		Country:           r.Country,
		Quantity:          quantity,
		Material:          r.Material,
		Stage:             r.Stage,
		Notes:             r.Notes,
		CustomerUnitPrice: r.CustomerUnitPrice,
		Currency:          r.Currency,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func FromRfqs(records []entities.Rfq) []RfqResponse {
	out := make([]RfqResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromRfq(r))
	}
	return out
}
