package request

import "strings"

// RfqRequest is the customer-facing quote request payload. Everything except
// the contact email is optional at the transport layer; the use case decides
// what makes a draft submittable.
type RfqRequest struct {
	ProjectName  string `json:"project_name"`
	Company      string `json:"company"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email" binding:"required"`
	Country      string `json:"country"`
	Quantity     *int   `json:"quantity"`
	Material     string `json:"material"`
	Stage        string `json:"stage"`
	Notes        string `json:"notes"`
}

// RfqStatusRequest carries the target stage for a lifecycle transition.
type RfqStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r RfqStatusRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
