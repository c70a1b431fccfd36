package notification

import (
	"fmt"

	"osms-portal/internal/domain/entities"
)

// EventKind names a channel-independent occurrence worth notifying about.

type EventKind string

const (
	EventRfqReceived      EventKind = "rfq.received"
	EventRfqStatusChanged EventKind = "rfq.status_changed"
	EventEnquiryReceived  EventKind = "enquiry.received"
)

// Event carries the minimal data a channel needs to render a message.
//
// Rfq is a snapshot taken at dispatch time, not a live reference; channels
// must not read back through the store.

type Event struct {
	Kind   EventKind
	Rfq    entities.Rfq
	Status entities.RfqStatus // target status for rfq.status_changed

	// Enquiry fields, set only for enquiry.received.
	EnquiryName    string
	EnquiryEmail   string
	EnquiryCompany string
	EnquiryMessage string
}

// DedupKey identifies the customer-facing occurrence this event represents.
// Events with an empty key are never deduplicated.
func (e Event) DedupKey() string {
	switch e.Kind {
	case EventRfqReceived:
		return fmt.Sprintf("%s|%s", e.Rfq.ID, entities.RfqStatusReceived)
	case EventRfqStatusChanged:
		return fmt.Sprintf("%s|%s", e.Rfq.ID, e.Status)
	default:
		return ""
	}
}
