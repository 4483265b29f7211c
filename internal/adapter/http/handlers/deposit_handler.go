package handlers

import (
	"errors"
	"net/http"

	request "taller_movil/internal/adapter/http/dto/request"
	response "taller_movil/internal/adapter/http/dto/response"
	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase"
	"taller_movil/pkg"

	"github.com/gin-gonic/gin"
)

// DepositHandler collects deposit payments for a draft order. Approved
// payments are additionally recorded on the live composition so the deposit
// figure shows up in the aggregate view.

type DepositHandler struct {
	deposits usecase.IDepositPaymentUseCase
	manager  usecase.ICompositionManager
}

func NewDepositHandler(deposits usecase.IDepositPaymentUseCase, manager usecase.ICompositionManager) *DepositHandler {
	return &DepositHandler{deposits: deposits, manager: manager}
}

// Collect godoc
// @Summary  Charge a deposit for the draft through the payment gateway
// @Tags     deposits
// @Accept   json
// @Produce  json
// @Param    id path string true "draft id"
// @Param    payload body request.DepositPaymentRequest true "deposit"
// @Success  201 {object} response.DepositPaymentResponse
// @Router   /orders/{id}/deposit/payments [post]
func (h *DepositHandler) Collect(c *gin.Context) {
	var payload request.DepositPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DEPOSIT", "Invalid deposit payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	draftID := c.Param("id")
	payment, err := h.deposits.Collect(c.Request.Context(), draftID, payload.Amount, payload.GatewayPayload)
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if payment.Status == entities.PaymentStatusApproved {
		if _, err := h.manager.RecordDeposit(draftID, payment.Amount); err != nil && !errors.Is(err, usecase.ErrCompositionNotFound) {
			appErr := mapCompositionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	c.JSON(http.StatusCreated, response.FromDepositPayment(payment))
}

// ListByDraft godoc
// @Summary  List deposit payments collected for a draft
// @Tags     deposits
// @Produce  json
// @Param    id path string true "draft id"
// @Success  200 {array} response.DepositPaymentResponse
// @Router   /orders/{id}/deposit/payments [get]
func (h *DepositHandler) ListByDraft(c *gin.Context) {
	payments, err := h.deposits.ListByDraftID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.DepositPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, response.FromDepositPayment(p))
	}
	c.JSON(http.StatusOK, out)
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDepositDraftID),
		errors.Is(err, usecase.ErrInvalidDepositAmount),
		errors.Is(err, usecase.ErrInvalidGatewayPayload):
		return pkg.NewDomainErrorSimple("INVALID_DEPOSIT", "Invalid deposit data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
