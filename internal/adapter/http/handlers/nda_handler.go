package handlers

import (
	"errors"
	"net/http"

	request "osms-portal/internal/adapter/http/dto/request"
	response "osms-portal/internal/adapter/http/dto/response"
	"osms-portal/internal/usecase"
	"osms-portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNdaPayload = pkg.NewDomainErrorSimple("INVALID_NDA_INPUT", "Invalid NDA payload", http.StatusBadRequest)
)

// NdaHandler records and lists NDA acceptances.

type NdaHandler struct {
	usecase usecase.INdaUseCase
}

func NewNdaHandler(uc usecase.INdaUseCase) *NdaHandler {
	return &NdaHandler{usecase: uc}
}

// CreateNda records one NDA acceptance. The accepting party's network
// address is captured from the connection for the audit trail.
func (h *NdaHandler) CreateNda(c *gin.Context) {
	var payload request.NdaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNdaPayload.HTTPStatus, errInvalidNdaPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RecordAcceptance(c.Request.Context(), usecase.NdaDraft{
		Name:            payload.Name,
		Email:           payload.Email,
		Company:         payload.Company,
		AcceptedVersion: payload.AcceptedVersion,
		SourceAddress:   c.ClientIP(),
	})
	if err != nil {
		appErr := mapNdaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromNda(created))
}

// ListNdas returns the acceptances recorded for the email query parameter.
func (h *NdaHandler) ListNdas(c *gin.Context) {
	records, err := h.usecase.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		appErr := mapNdaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNdas(records))
}

func mapNdaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingNdaName),
		errors.Is(err, usecase.ErrMissingNdaEmail),
		errors.Is(err, usecase.ErrInvalidNdaEmail),
		errors.Is(err, usecase.ErrMissingNdaCompany):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
