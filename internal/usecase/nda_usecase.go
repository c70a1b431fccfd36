package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"osms-portal/internal/domain/entities"
	"osms-portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingNdaName    = errors.New("missing nda name")
	ErrMissingNdaEmail   = errors.New("missing nda email")
	ErrMissingNdaCompany = errors.New("missing nda company")
	ErrInvalidNdaEmail   = errors.New("invalid nda email")
)

// NdaDraft is the caller-supplied input for an NDA acceptance.

type NdaDraft struct {
	Name            string
	Email           string
	Company         string
	AcceptedVersion string
	SourceAddress   string
}

// INdaUseCase records NDA acceptances and resolves them by contact email.

type INdaUseCase interface {
	RecordAcceptance(ctx context.Context, draft NdaDraft) (entities.Nda, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Nda, error)
}

type NdaUseCase struct {
	repo     interfaces.INdaRepository
	registry interfaces.IRegistryGateway

	sideEffectTimeout time.Duration
	sideEffects       sync.WaitGroup
}

var _ INdaUseCase = (*NdaUseCase)(nil)

func NewNdaUseCase(repo interfaces.INdaRepository, registry interfaces.IRegistryGateway) *NdaUseCase {
	return &NdaUseCase{
		repo:              repo,
		registry:          registry,
		sideEffectTimeout: defaultSideEffectTimeout,
	}
}

// RecordAcceptance validates and persists one acceptance event, then mirrors
// it into the external registry best-effort.
func (u *NdaUseCase) RecordAcceptance(ctx context.Context, draft NdaDraft) (entities.Nda, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.TrimSpace(draft.Email)
	draft.Company = strings.TrimSpace(draft.Company)
	draft.AcceptedVersion = strings.TrimSpace(draft.AcceptedVersion)

	if draft.Name == "" {
		return entities.Nda{}, ErrMissingNdaName
	}
	if draft.Email == "" {
		return entities.Nda{}, ErrMissingNdaEmail
	}
	if !plausibleEmail(draft.Email) {
		return entities.Nda{}, ErrInvalidNdaEmail
	}
	if draft.Company == "" {
		return entities.Nda{}, ErrMissingNdaCompany
	}

	n := entities.Nda{
		ID:              uuid.NewString(),
		Name:            draft.Name,
		Email:           draft.Email,
		Company:         draft.Company,
		AcceptedVersion: draft.AcceptedVersion,
		SourceAddress:   strings.TrimSpace(draft.SourceAddress),
		CreatedAt:       time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, n)
	if err != nil {
		log.Printf("[nda][usecase] create failed err=%v", err)
		return entities.Nda{}, err
	}
	log.Printf("[nda][usecase] recorded nda_id=%s email=%s", created.ID, created.Email)

	u.sideEffects.Add(1)
	go func() {
		defer u.sideEffects.Done()
		pushCtx, cancel := context.WithTimeout(context.Background(), u.sideEffectTimeout)
		defer cancel()
		if err := u.registry.PublishNda(pushCtx, created); err != nil {
			log.Printf("[nda][usecase] registry publish failed nda_id=%s err=%v", created.ID, err)
		}
	}()

	return created, nil
}

func (u *NdaUseCase) ListByEmail(ctx context.Context, email string) ([]entities.Nda, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrMissingNdaEmail
	}
	return u.repo.ListByEmail(ctx, email)
}
