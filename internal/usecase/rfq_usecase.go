package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"sync"
	"time"

	"osms-portal/internal/domain/entities"
	"osms-portal/internal/domain/pricing"
	"osms-portal/internal/notification"
	"osms-portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRfqNotFound           = errors.New("rfq not found")
	ErrInvalidRfqID          = errors.New("invalid rfq id")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrMissingContactEmail   = errors.New("missing contact email")
	ErrInvalidContactEmail   = errors.New("invalid contact email")
	ErrMissingProjectDetails = errors.New("missing project name and notes")
	ErrInvalidQuantity       = errors.New("invalid quantity")
)

const defaultSideEffectTimeout = 30 * time.Second

// RfqDraft is the caller-supplied input for a new RFQ. A nil Quantity means
// the customer did not state one.

type RfqDraft struct {
	ProjectName  string
	Company      string
	ContactName  string
	ContactEmail string
	Country      string
	Quantity     *int
	Material     string
	Stage        string
	Notes        string
}

// IRfqUseCase exposes the RFQ lifecycle operations.
//
// Failure semantics:
//   - validation, not-found and invalid-transition errors return
//     synchronously with nothing persisted and no side effects attempted
//   - persistence errors abort the operation
//   - notification and registry-sync failures never fail the triggering
//     operation; they are dispatched fire-and-forget after the state write

type IRfqUseCase interface {
	SubmitRfq(ctx context.Context, draft RfqDraft) (entities.Rfq, error)
	TransitionStatus(ctx context.Context, id string, newStatus entities.RfqStatus) (entities.Rfq, error)
	GetEnrichedRfq(ctx context.Context, id string) (entities.Rfq, error)
	ListRfqs(ctx context.Context) ([]entities.Rfq, error)
}

type RfqUseCase struct {
	repo       interfaces.IRfqRepository
	registry   interfaces.IRegistryGateway
	dispatcher interfaces.INotificationDispatcher
	calculator pricing.Calculator

	sideEffectTimeout time.Duration
	sideEffects       sync.WaitGroup
}

var _ IRfqUseCase = (*RfqUseCase)(nil)

func NewRfqUseCase(
	repo interfaces.IRfqRepository,
	registry interfaces.IRegistryGateway,
	dispatcher interfaces.INotificationDispatcher,
	calculator pricing.Calculator,
) *RfqUseCase {
	return &RfqUseCase{
		repo:              repo,
		registry:          registry,
		dispatcher:        dispatcher,
		calculator:        calculator,
		sideEffectTimeout: defaultSideEffectTimeout,
	}
}

// SubmitRfq validates the draft, persists a new record in the received
// stage, and returns it. The staff notification and the registry push run
// asynchronously; once the record is persisted it exists regardless of what
// happens to either.
func (u *RfqUseCase) SubmitRfq(ctx context.Context, draft RfqDraft) (entities.Rfq, error) {
	draft = trimDraft(draft)

	if draft.ContactEmail == "" {
		return entities.Rfq{}, ErrMissingContactEmail
	}
	if !plausibleEmail(draft.ContactEmail) {
		return entities.Rfq{}, ErrInvalidContactEmail
	}
	if draft.ProjectName == "" && draft.Notes == "" {
		return entities.Rfq{}, ErrMissingProjectDetails
	}

	quantity := entities.QuantityUnknown
	if draft.Quantity != nil {
		if *draft.Quantity < 0 {
			return entities.Rfq{}, ErrInvalidQuantity
		}
		quantity = *draft.Quantity
	}

	now := time.Now().UTC()
	rec := entities.Rfq{
		ID:           uuid.NewString(),
		Status:       entities.RfqStatusReceived,
		ProjectName:  draft.ProjectName,
		Company:      draft.Company,
		ContactName:  draft.ContactName,
		ContactEmail: draft.ContactEmail,
		Country:      draft.Country,
		Quantity:     quantity,
		Material:     draft.Material,
		Stage:        draft.Stage,
		Notes:        draft.Notes,
		Currency:     u.calculator.Currency(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		log.Printf("[rfq][usecase] create failed err=%v", err)
		return entities.Rfq{}, err
	}
	log.Printf("[rfq][usecase] submitted rfq_id=%s project=%q", created.ID, created.ProjectName)

	u.notifyAsync(notification.Event{Kind: notification.EventRfqReceived, Rfq: created})
	u.publishAsync(created)

	return created, nil
}

// TransitionStatus moves an RFQ to newStatus. The transition check runs
// inside the store's atomic mutator, so two racing callers serialize and
// the loser is judged against the winner's committed status. The status
// write commits and is readable regardless of notification outcome.
func (u *RfqUseCase) TransitionStatus(ctx context.Context, id string, newStatus entities.RfqStatus) (entities.Rfq, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Rfq{}, ErrInvalidRfqID
	}
	if !newStatus.IsValid() {
		return entities.Rfq{}, ErrInvalidStatus
	}

	updated, err := u.repo.Update(ctx, id, func(rec *entities.Rfq) error {
		if !rec.Status.CanTransitionTo(newStatus) {
			return ErrInvalidTransition
		}
		rec.Status = newStatus
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidTransition) {
			log.Printf("[rfq][usecase] transition failed rfq_id=%s status=%s err=%v", id, newStatus, err)
		}
		return entities.Rfq{}, err
	}
	if updated.ID == "" {
		return entities.Rfq{}, ErrRfqNotFound
	}
	log.Printf("[rfq][usecase] transitioned rfq_id=%s status=%s", id, newStatus)

	u.notifyAsync(notification.Event{
		Kind:   notification.EventRfqStatusChanged,
		Rfq:    updated,
		Status: newStatus,
	})

	return u.enrich(updated), nil
}

// GetEnrichedRfq returns the record with the customer unit price recomputed
// from the freshest vendor price: the registry is pulled first and a changed
// vendor price is persisted before the record is returned. A registry
// failure degrades to the stored price.
func (u *RfqUseCase) GetEnrichedRfq(ctx context.Context, id string) (entities.Rfq, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Rfq{}, ErrInvalidRfqID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Rfq{}, err
	}
	if rec.ID == "" {
		return entities.Rfq{}, ErrRfqNotFound
	}

	if price, ok := u.pullVendorPrices(ctx)[id]; ok {
		if rec.VendorUnitPrice == nil || *rec.VendorUnitPrice != price {
			updated, err := u.repo.Update(ctx, id, func(r *entities.Rfq) error {
				r.VendorUnitPrice = &price
				return nil
			})
			if err != nil {
				return entities.Rfq{}, err
			}
			if updated.ID != "" {
				rec = updated
			}
		}
	}

	return u.enrich(rec), nil
}

// ListRfqs returns a newest-first snapshot, each entry enriched from its
// stored vendor price. The registry is not consulted here; the detail read
// is the reconciliation point.
func (u *RfqUseCase) ListRfqs(ctx context.Context) ([]entities.Rfq, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i] = u.enrich(records[i])
	}
	return records, nil
}

func (u *RfqUseCase) enrich(rec entities.Rfq) entities.Rfq {
	rec.CustomerUnitPrice = u.calculator.CustomerPrice(rec.VendorUnitPrice)
	return rec
}

func (u *RfqUseCase) pullVendorPrices(ctx context.Context) map[string]float64 {
	prices, err := u.registry.FetchVendorPrices(ctx)
	if err != nil {
		log.Printf("[rfq][usecase] vendor price pull failed, continuing without err=%v", err)
		return nil
	}
	return prices
}

// notifyAsync dispatches ev on a detached context so the caller's response
// never waits on a notification channel. The dispatcher bounds each channel
// send with its own timeout.
func (u *RfqUseCase) notifyAsync(ev notification.Event) {
	u.sideEffects.Add(1)
	go func() {
		defer u.sideEffects.Done()
		ctx, cancel := context.WithTimeout(context.Background(), u.sideEffectTimeout)
		defer cancel()
		u.dispatcher.Notify(ctx, ev)
	}()
}

func (u *RfqUseCase) publishAsync(rec entities.Rfq) {
	u.sideEffects.Add(1)
	go func() {
		defer u.sideEffects.Done()
		ctx, cancel := context.WithTimeout(context.Background(), u.sideEffectTimeout)
		defer cancel()
		if err := u.registry.PublishRfq(ctx, rec); err != nil {
			log.Printf("[rfq][usecase] registry publish failed rfq_id=%s err=%v", rec.ID, err)
		}
	}()
}

func trimDraft(d RfqDraft) RfqDraft {
	d.ProjectName = strings.TrimSpace(d.ProjectName)
	d.Company = strings.TrimSpace(d.Company)
	d.ContactName = strings.TrimSpace(d.ContactName)
	d.ContactEmail = strings.TrimSpace(d.ContactEmail)
	d.Country = strings.TrimSpace(d.Country)
	d.Material = strings.TrimSpace(d.Material)
	d.Stage = strings.TrimSpace(d.Stage)
	d.Notes = strings.TrimSpace(d.Notes)
	return d
}

// plausibleEmail accepts anything net/mail can parse as a bare address with
// a dotted domain. Deliverability is the email provider's problem.
func plausibleEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}
