package entities

import "time"

// RfqStatus represents the lifecycle stage of a request-for-quote.
//
// Domain notes:
//   - The portal is the source of truth for RFQ lifecycle state; the external
//     registry only mirrors it.
//   - Stages are strictly ordered and transitions only move forward. The one
//     exception is RfqStatusCancelled, a terminal stage reachable from any
//     non-terminal stage.

type RfqStatus string

const (
	RfqStatusReceived       RfqStatus = "received"
	RfqStatusUnderReview    RfqStatus = "under_review"
	RfqStatusQuoted         RfqStatus = "quoted"
	RfqStatusWaitingPayment RfqStatus = "waiting_payment"
	RfqStatusInProduction   RfqStatus = "in_production"
	RfqStatusShipped        RfqStatus = "shipped"
	RfqStatusComplete       RfqStatus = "complete"
	RfqStatusCancelled      RfqStatus = "cancelled"
)

var statusRank = map[RfqStatus]int{
	RfqStatusReceived:       0,
	RfqStatusUnderReview:    1,
	RfqStatusQuoted:         2,
	RfqStatusWaitingPayment: 3,
	RfqStatusInProduction:   4,
	RfqStatusShipped:        5,
	RfqStatusComplete:       6,
}

// IsValid reports whether s is one of the known lifecycle stages.
func (s RfqStatus) IsValid() bool {
	if s == RfqStatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s RfqStatus) IsTerminal() bool {
	return s == RfqStatusComplete || s == RfqStatusCancelled
}

// Label returns the human-facing form used in customer emails.
func (s RfqStatus) Label() string {
	switch s {
	case RfqStatusUnderReview:
		return "Under review"
	case RfqStatusQuoted:
		return "Quoted"
	case RfqStatusWaitingPayment:
		return "Waiting payment"
	case RfqStatusInProduction:
		return "In production"
	case RfqStatusShipped:
		return "Shipped"
	case RfqStatusComplete:
		return "Complete"
	case RfqStatusCancelled:
		return "Cancelled"
	default:
		return "Received"
	}
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle
// step: strictly forward in stage order, or to cancelled from any
// non-terminal stage.
func (s RfqStatus) CanTransitionTo(next RfqStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == RfqStatusCancelled {
		return true
	}
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// QuantityUnknown marks an RFQ whose customer did not state a quantity.
const QuantityUnknown = -1

// Rfq is the canonical request-for-quote record.
//
// Monetary representation:
//   - VendorUnitPrice comes from the external registry, never the customer.
//   - CustomerUnitPrice is derived (vendor price plus markup) and is
//     recomputed on every enriched read; it is never persisted.
//
// Version is the optimistic-concurrency counter maintained by the store; it
// is not part of the domain contract.

type Rfq struct {
	ID                string    `json:"id"`
	Status            RfqStatus `json:"status"`
	ProjectName       string    `json:"project_name"`
	Company           string    `json:"company"`
	ContactName       string    `json:"contact_name"`
	ContactEmail      string    `json:"contact_email"`
	Country           string    `json:"country"`
	Quantity          int       `json:"quantity"`
	Material          string    `json:"material"`
	Stage             string    `json:"stage"`
	Notes             string    `json:"notes"`
	VendorUnitPrice   *float64  `json:"vendor_unit_price,omitempty"`
	CustomerUnitPrice *float64  `json:"customer_unit_price,omitempty"`
	Currency          string    `json:"currency"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Version           int64     `json:"-"`
}
