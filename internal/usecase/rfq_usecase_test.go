package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"osms-portal/internal/domain/entities"
	"osms-portal/internal/domain/pricing"
	"osms-portal/internal/notification"
	mock_interfaces "osms-portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func testCalculator() pricing.Calculator { return pricing.NewCalculator(0.45, "USD") }

func validDraft() RfqDraft {
	return RfqDraft{
		ProjectName:  "Droplet chip",
		Company:      "Acme Labs",
		ContactName:  "Dana",
		ContactEmail: "dana@acme.test",
		Quantity:     intPtr(250),
		Material:     "PDMS",
	}
}

// updateApplying wires a mock Update call to behave like a real store
// holding stored: the mutator runs against a copy and its error aborts.
func updateApplying(stored entities.Rfq) func(ctx context.Context, id string, mutate func(*entities.Rfq) error) (entities.Rfq, error) {
	return func(_ context.Context, _ string, mutate func(*entities.Rfq) error) (entities.Rfq, error) {
		rec := stored
		if err := mutate(&rec); err != nil {
			return entities.Rfq{}, err
		}
		rec.Version = stored.Version + 1
		rec.UpdatedAt = time.Now().UTC()
		return rec, nil
	}
}

func TestRfqUseCase_SubmitRfq(t *testing.T) {
	t.Run("missing contact email", func(t *testing.T) {
		uc := NewRfqUseCase(nil, nil, nil, testCalculator())
		d := validDraft()
		d.ContactEmail = "   "
		if _, err := uc.SubmitRfq(context.Background(), d); !errors.Is(err, ErrMissingContactEmail) {
			t.Fatalf("expected ErrMissingContactEmail, got %v", err)
		}
	})

	t.Run("implausible contact email", func(t *testing.T) {
		uc := NewRfqUseCase(nil, nil, nil, testCalculator())
		for _, email := range []string{"not-an-email", "a@b", "Dana <dana@acme.test>", "a b@c.test"} {
			d := validDraft()
			d.ContactEmail = email
			if _, err := uc.SubmitRfq(context.Background(), d); !errors.Is(err, ErrInvalidContactEmail) {
				t.Fatalf("email %q: expected ErrInvalidContactEmail, got %v", email, err)
			}
		}
	})

	t.Run("missing project name and notes", func(t *testing.T) {
		uc := NewRfqUseCase(nil, nil, nil, testCalculator())
		d := validDraft()
		d.ProjectName = ""
		d.Notes = ""
		if _, err := uc.SubmitRfq(context.Background(), d); !errors.Is(err, ErrMissingProjectDetails) {
			t.Fatalf("expected ErrMissingProjectDetails, got %v", err)
		}
	})

	t.Run("notes alone satisfy the project requirement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		registry := mock_interfaces.NewMockIRegistryGateway(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewRfqUseCase(repo, registry, dispatcher, testCalculator())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Rfq) (entities.Rfq, error) { return r, nil })
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(notification.DispatchResult{})
		registry.EXPECT().PublishRfq(gomock.Any(), gomock.Any()).Return(nil)

		d := validDraft()
		d.ProjectName = ""
		d.Notes = "see attached drawing"
		if _, err := uc.SubmitRfq(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.sideEffects.Wait()
	})

	t.Run("negative quantity", func(t *testing.T) {
		uc := NewRfqUseCase(nil, nil, nil, testCalculator())
		d := validDraft()
		d.Quantity = intPtr(-1)
		if _, err := uc.SubmitRfq(context.Background(), d); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("persistence failure aborts with no side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		registry := mock_interfaces.NewMockIRegistryGateway(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewRfqUseCase(repo, registry, dispatcher, testCalculator())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Rfq{}, errors.New("db down"))

		_, err := uc.SubmitRfq(context.Background(), validDraft())
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db error, got %v", err)
		}
		uc.sideEffects.Wait()
	})

	t.Run("success triggers notification and registry push", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		registry := mock_interfaces.NewMockIRegistryGateway(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewRfqUseCase(repo, registry, dispatcher, testCalculator())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Rfq{})).DoAndReturn(
			func(_ context.Context, r entities.Rfq) (entities.Rfq, error) {
				if r.ID == "" || r.Status != entities.RfqStatusReceived {
					t.Fatalf("unexpected record: %+v", r)
				}
				if r.Quantity != 250 || r.Currency != "USD" {
					t.Fatalf("unexpected record: %+v", r)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if r.CustomerUnitPrice != nil || r.VendorUnitPrice != nil {
					t.Fatalf("prices must not be set at submission")
				}
				return r, nil
			})
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev notification.Event) notification.DispatchResult {
				if ev.Kind != notification.EventRfqReceived {
					t.Errorf("expected rfq.received, got %s", ev.Kind)
				}
				if ev.Rfq.ContactEmail != "dana@acme.test" {
					t.Errorf("unexpected event payload: %+v", ev.Rfq)
				}
				return notification.DispatchResult{}
			})
		registry.EXPECT().PublishRfq(gomock.Any(), gomock.Any()).Return(errors.New("notion down")) // logged only

		created, err := uc.SubmitRfq(context.Background(), validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
		uc.sideEffects.Wait()
	})

	t.Run("unknown quantity stored as sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		registry := mock_interfaces.NewMockIRegistryGateway(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewRfqUseCase(repo, registry, dispatcher, testCalculator())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Rfq) (entities.Rfq, error) {
				if r.Quantity != entities.QuantityUnknown {
					t.Fatalf("expected unknown quantity, got %d", r.Quantity)
				}
				return r, nil
			})
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(notification.DispatchResult{})
		registry.EXPECT().PublishRfq(gomock.Any(), gomock.Any()).Return(nil)

		d := validDraft()
		d.Quantity = nil
		if _, err := uc.SubmitRfq(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.sideEffects.Wait()
	})
}

func TestRfqUseCase_TransitionStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewRfqUseCase(nil, nil, nil, testCalculator())
		if _, err := uc.TransitionStatus(context.Background(), "  ", entities.RfqStatusQuoted); !errors.Is(err, ErrInvalidRfqID) {
			t.Fatalf("expected ErrInvalidRfqID, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewRfqUseCase(nil, nil, nil, testCalculator())
		if _, err := uc.TransitionStatus(context.Background(), "rfq-1", "ordered"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		uc := NewRfqUseCase(repo, nil, nil, testCalculator())

		repo.EXPECT().Update(gomock.Any(), "rfq-1", gomock.Any()).Return(entities.Rfq{}, nil)

		if _, err := uc.TransitionStatus(context.Background(), "rfq-1", entities.RfqStatusQuoted); !errors.Is(err, ErrRfqNotFound) {
			t.Fatalf("expected ErrRfqNotFound, got %v", err)
		}
	})

	t.Run("backward move rejected inside the mutator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		uc := NewRfqUseCase(repo, nil, nil, testCalculator())

		stored := entities.Rfq{ID: "rfq-1", Status: entities.RfqStatusQuoted}
		repo.EXPECT().Update(gomock.Any(), "rfq-1", gomock.Any()).DoAndReturn(updateApplying(stored))

		if _, err := uc.TransitionStatus(context.Background(), "rfq-1", entities.RfqStatusReceived); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("persistence failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		uc := NewRfqUseCase(repo, nil, nil, testCalculator())

		repo.EXPECT().Update(gomock.Any(), "rfq-1", gomock.Any()).Return(entities.Rfq{}, errors.New("db down"))

		if _, err := uc.TransitionStatus(context.Background(), "rfq-1", entities.RfqStatusQuoted); err == nil || err.Error() != "db down" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success dispatches status-changed and returns enriched record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewRfqUseCase(repo, nil, dispatcher, testCalculator())

		stored := entities.Rfq{
			ID:              "rfq-1",
			Status:          entities.RfqStatusUnderReview,
			ContactEmail:    "dana@acme.test",
			VendorUnitPrice: floatPtr(20.00),
		}
		repo.EXPECT().Update(gomock.Any(), "rfq-1", gomock.Any()).DoAndReturn(updateApplying(stored))
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev notification.Event) notification.DispatchResult {
				if ev.Kind != notification.EventRfqStatusChanged || ev.Status != entities.RfqStatusQuoted {
					t.Errorf("unexpected event: %+v", ev)
				}
				return notification.DispatchResult{}
			})

		updated, err := uc.TransitionStatus(context.Background(), "rfq-1", entities.RfqStatusQuoted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RfqStatusQuoted {
			t.Fatalf("unexpected status %s", updated.Status)
		}
		if updated.CustomerUnitPrice == nil || *updated.CustomerUnitPrice != 29.00 {
			t.Fatalf("expected enriched price 29.00, got %v", updated.CustomerUnitPrice)
		}
		uc.sideEffects.Wait()
	})

	t.Run("notification failure does not fail the transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewRfqUseCase(repo, nil, dispatcher, testCalculator())

		stored := entities.Rfq{ID: "rfq-1", Status: entities.RfqStatusReceived, ContactEmail: "dana@acme.test"}
		repo.EXPECT().Update(gomock.Any(), "rfq-1", gomock.Any()).DoAndReturn(updateApplying(stored))
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(notification.DispatchResult{
			Channels: []notification.ChannelResult{
				{Channel: "customer-email", Reason: "timeout"},
				{Channel: "staff-email", Sent: true},
			},
		})

		updated, err := uc.TransitionStatus(context.Background(), "rfq-1", entities.RfqStatusUnderReview)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RfqStatusUnderReview {
			t.Fatalf("unexpected status %s", updated.Status)
		}
		uc.sideEffects.Wait()
	})

	t.Run("cancellation from a mid-pipeline stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewRfqUseCase(repo, nil, dispatcher, testCalculator())

		stored := entities.Rfq{ID: "rfq-1", Status: entities.RfqStatusInProduction}
		repo.EXPECT().Update(gomock.Any(), "rfq-1", gomock.Any()).DoAndReturn(updateApplying(stored))
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(notification.DispatchResult{})

		updated, err := uc.TransitionStatus(context.Background(), "rfq-1", entities.RfqStatusCancelled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RfqStatusCancelled {
			t.Fatalf("unexpected status %s", updated.Status)
		}
		uc.sideEffects.Wait()
	})
}

func TestRfqUseCase_GetEnrichedRfq(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewRfqUseCase(nil, nil, nil, testCalculator())
		if _, err := uc.GetEnrichedRfq(context.Background(), ""); !errors.Is(err, ErrInvalidRfqID) {
			t.Fatalf("expected ErrInvalidRfqID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		uc := NewRfqUseCase(repo, nil, nil, testCalculator())

		repo.EXPECT().GetByID(gomock.Any(), "rfq-1").Return(entities.Rfq{}, nil)

		if _, err := uc.GetEnrichedRfq(context.Background(), "rfq-1"); !errors.Is(err, ErrRfqNotFound) {
			t.Fatalf("expected ErrRfqNotFound, got %v", err)
		}
	})

	t.Run("registry price is persisted then reflected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		registry := mock_interfaces.NewMockIRegistryGateway(ctrl)
		uc := NewRfqUseCase(repo, registry, nil, testCalculator())

		stored := entities.Rfq{ID: "rfq-1", Status: entities.RfqStatusQuoted}
		repo.EXPECT().GetByID(gomock.Any(), "rfq-1").Return(stored, nil)
		registry.EXPECT().FetchVendorPrices(gomock.Any()).Return(map[string]float64{"rfq-1": 20.00}, nil)
		repo.EXPECT().Update(gomock.Any(), "rfq-1", gomock.Any()).DoAndReturn(updateApplying(stored))

		got, err := uc.GetEnrichedRfq(context.Background(), "rfq-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.VendorUnitPrice == nil || *got.VendorUnitPrice != 20.00 {
			t.Fatalf("expected vendor price persisted, got %v", got.VendorUnitPrice)
		}
		if got.CustomerUnitPrice == nil || *got.CustomerUnitPrice != 29.00 {
			t.Fatalf("expected customer price 29.00, got %v", got.CustomerUnitPrice)
		}
	})

	t.Run("unchanged registry price skips the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		registry := mock_interfaces.NewMockIRegistryGateway(ctrl)
		uc := NewRfqUseCase(repo, registry, nil, testCalculator())

		stored := entities.Rfq{ID: "rfq-1", Status: entities.RfqStatusQuoted, VendorUnitPrice: floatPtr(20.00)}
		repo.EXPECT().GetByID(gomock.Any(), "rfq-1").Return(stored, nil)
		registry.EXPECT().FetchVendorPrices(gomock.Any()).Return(map[string]float64{"rfq-1": 20.00}, nil)

		got, err := uc.GetEnrichedRfq(context.Background(), "rfq-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CustomerUnitPrice == nil || *got.CustomerUnitPrice != 29.00 {
			t.Fatalf("expected customer price 29.00, got %v", got.CustomerUnitPrice)
		}
	})

	t.Run("unreachable registry degrades to stored price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		registry := mock_interfaces.NewMockIRegistryGateway(ctrl)
		uc := NewRfqUseCase(repo, registry, nil, testCalculator())

		stored := entities.Rfq{ID: "rfq-1", Status: entities.RfqStatusQuoted, VendorUnitPrice: floatPtr(10.00)}
		repo.EXPECT().GetByID(gomock.Any(), "rfq-1").Return(stored, nil)
		registry.EXPECT().FetchVendorPrices(gomock.Any()).Return(nil, errors.New("notion down"))

		got, err := uc.GetEnrichedRfq(context.Background(), "rfq-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CustomerUnitPrice == nil || *got.CustomerUnitPrice != 14.50 {
			t.Fatalf("expected stored-price enrichment 14.50, got %v", got.CustomerUnitPrice)
		}
	})

	t.Run("no vendor price yields no customer price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		registry := mock_interfaces.NewMockIRegistryGateway(ctrl)
		uc := NewRfqUseCase(repo, registry, nil, testCalculator())

		repo.EXPECT().GetByID(gomock.Any(), "rfq-1").Return(entities.Rfq{ID: "rfq-1"}, nil)
		registry.EXPECT().FetchVendorPrices(gomock.Any()).Return(map[string]float64{}, nil)

		got, err := uc.GetEnrichedRfq(context.Background(), "rfq-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CustomerUnitPrice != nil {
			t.Fatalf("expected nil customer price, got %v", *got.CustomerUnitPrice)
		}
	})
}

func TestRfqUseCase_ListRfqs(t *testing.T) {
	t.Run("repo error passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		uc := NewRfqUseCase(repo, nil, nil, testCalculator())

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		if _, err := uc.ListRfqs(context.Background()); err == nil || err.Error() != "db down" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("entries enriched from stored vendor prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRfqRepository(ctrl)
		uc := NewRfqUseCase(repo, nil, nil, testCalculator())

		repo.EXPECT().List(gomock.Any()).Return([]entities.Rfq{
			{ID: "b", VendorUnitPrice: floatPtr(33.33)},
			{ID: "a"},
		}, nil)

		list, err := uc.ListRfqs(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list[0].CustomerUnitPrice == nil || *list[0].CustomerUnitPrice != 48.33 {
			t.Fatalf("expected 48.33, got %v", list[0].CustomerUnitPrice)
		}
		if list[1].CustomerUnitPrice != nil {
			t.Fatalf("expected nil price for unpriced rfq")
		}
	})
}
