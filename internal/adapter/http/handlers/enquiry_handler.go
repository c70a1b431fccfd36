package handlers

import (
	"errors"
	"net/http"

	request "osms-portal/internal/adapter/http/dto/request"
	"osms-portal/internal/usecase"
	"osms-portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEnquiryPayload = pkg.NewDomainErrorSimple("INVALID_ENQUIRY_INPUT", "Invalid enquiry payload", http.StatusBadRequest)
)

// EnquiryHandler relays contact-form enquiries to the staff channel.

type EnquiryHandler struct {
	usecase usecase.IEnquiryUseCase
}

func NewEnquiryHandler(uc usecase.IEnquiryUseCase) *EnquiryHandler {
	return &EnquiryHandler{usecase: uc}
}

func (h *EnquiryHandler) CreateEnquiry(c *gin.Context) {
	var payload request.EnquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEnquiryPayload.HTTPStatus, errInvalidEnquiryPayload.ToHTTPError())
		return
	}

	err := h.usecase.SubmitEnquiry(c.Request.Context(), usecase.EnquiryDraft{
		Name:    payload.Name,
		Email:   payload.Email,
		Company: payload.Company,
		Message: payload.Message,
	})
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "delivered"})
}

func mapEnquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingEnquiryEmail),
		errors.Is(err, usecase.ErrInvalidEnquiryEmail),
		errors.Is(err, usecase.ErrMissingEnquiryMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEnquiryNotDelivered):
		return pkg.NewDomainErrorSimple("ENQUIRY_NOT_DELIVERED", "Enquiry could not be delivered", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
