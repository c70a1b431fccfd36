package entities

import "time"

// Nda records a single NDA acceptance event from the portal.
//
// Acceptances are append-only: a record is created once and never mutated or
// deleted. There is no stored foreign key to an Rfq; the two are related only
// by matching contact email at lookup time.

type Nda struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Company         string    `json:"company"`
	AcceptedVersion string    `json:"accepted_version"`
	SourceAddress   string    `json:"source_address,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
