package usecase

import (
	"context"
	"errors"
	"strings"

	"osms-portal/internal/notification"
	"osms-portal/internal/usecase/interfaces"
)

var (
	ErrMissingEnquiryEmail   = errors.New("missing enquiry email")
	ErrInvalidEnquiryEmail   = errors.New("invalid enquiry email")
	ErrMissingEnquiryMessage = errors.New("missing enquiry message")
	ErrEnquiryNotDelivered   = errors.New("enquiry could not be delivered")
)

// EnquiryDraft is a free-form question from the contact form. Enquiries hold
// no lifecycle state; they are relayed straight to the staff channel.

type EnquiryDraft struct {
	Name    string
	Email   string
	Company string
	Message string
}

type IEnquiryUseCase interface {
	SubmitEnquiry(ctx context.Context, draft EnquiryDraft) error
}

type EnquiryUseCase struct {
	dispatcher interfaces.INotificationDispatcher
}

var _ IEnquiryUseCase = (*EnquiryUseCase)(nil)

func NewEnquiryUseCase(dispatcher interfaces.INotificationDispatcher) *EnquiryUseCase {
	return &EnquiryUseCase{dispatcher: dispatcher}
}

// SubmitEnquiry relays the enquiry synchronously: unlike lifecycle
// notifications there is no state write to protect, and the caller deserves
// to know when nothing was delivered.
func (u *EnquiryUseCase) SubmitEnquiry(ctx context.Context, draft EnquiryDraft) error {
	draft.Email = strings.TrimSpace(draft.Email)
	draft.Message = strings.TrimSpace(draft.Message)

	if draft.Email == "" {
		return ErrMissingEnquiryEmail
	}
	if !plausibleEmail(draft.Email) {
		return ErrInvalidEnquiryEmail
	}
	if draft.Message == "" {
		return ErrMissingEnquiryMessage
	}

	res := u.dispatcher.Notify(ctx, notification.Event{
		Kind:           notification.EventEnquiryReceived,
		EnquiryName:    strings.TrimSpace(draft.Name),
		EnquiryEmail:   draft.Email,
		EnquiryCompany: strings.TrimSpace(draft.Company),
		EnquiryMessage: draft.Message,
	})

	for _, ch := range res.Channels {
		if ch.Sent {
			return nil
		}
	}
	return ErrEnquiryNotDelivered
}
