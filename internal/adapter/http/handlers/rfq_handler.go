package handlers

import (
	"errors"
	"net/http"

	request "osms-portal/internal/adapter/http/dto/request"
	response "osms-portal/internal/adapter/http/dto/response"
	"osms-portal/internal/domain/entities"
	"osms-portal/internal/usecase"
	"osms-portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRfqPayload = pkg.NewDomainErrorSimple("INVALID_RFQ_INPUT", "Invalid RFQ payload", http.StatusBadRequest)
)

// RfqHandler handles HTTP requests for the RFQ lifecycle.

type RfqHandler struct {
	usecase usecase.IRfqUseCase
}

func NewRfqHandler(uc usecase.IRfqUseCase) *RfqHandler {
	return &RfqHandler{usecase: uc}
}

// CreateRfq accepts a new quote request and stores it in the received stage.
func (h *RfqHandler) CreateRfq(c *gin.Context) {
	var payload request.RfqRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRfqPayload.HTTPStatus, errInvalidRfqPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.SubmitRfq(c.Request.Context(), usecase.RfqDraft{
		ProjectName:  payload.ProjectName,
		Company:      payload.Company,
		ContactName:  payload.ContactName,
		ContactEmail: payload.ContactEmail,
		Country:      payload.Country,
		Quantity:     payload.Quantity,
		Material:     payload.Material,
		Stage:        payload.Stage,
		Notes:        payload.Notes,
	})
	if err != nil {
		appErr := mapRfqError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRfq(created))
}

// ListRfqs returns every RFQ, newest first.
func (h *RfqHandler) ListRfqs(c *gin.Context) {
	records, err := h.usecase.ListRfqs(c.Request.Context())
	if err != nil {
		appErr := mapRfqError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRfqs(records))
}

// GetRfq returns one RFQ with its customer price refreshed from the vendor
// registry.
func (h *RfqHandler) GetRfq(c *gin.Context) {
	rec, err := h.usecase.GetEnrichedRfq(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRfqError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRfq(rec))
}

// UpdateRfqStatus moves an RFQ to the requested lifecycle stage.
func (h *RfqHandler) UpdateRfqStatus(c *gin.Context) {
	var payload request.RfqStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRfqPayload.HTTPStatus, errInvalidRfqPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.TransitionStatus(c.Request.Context(), c.Param("id"), entities.RfqStatus(payload.ResolveStatus()))
	if err != nil {
		appErr := mapRfqError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRfq(updated))
}

func mapRfqError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRfqID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrMissingContactEmail),
		errors.Is(err, usecase.ErrInvalidContactEmail),
		errors.Is(err, usecase.ErrMissingProjectDetails),
		errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Requested status transition is not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrRfqNotFound):
		return pkg.NewDomainErrorSimple("RFQ_NOT_FOUND", "RFQ not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
