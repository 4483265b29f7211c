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

var (
	errInvalidCompositionPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// CompositionHandler exposes the repair order composition engine over HTTP.
// Every mutation returns the full aggregate view so the UI keeps progress,
// totals and the save signal in sync without extra round trips.

type CompositionHandler struct {
	manager usecase.ICompositionManager
}

func NewCompositionHandler(manager usecase.ICompositionManager) *CompositionHandler {
	return &CompositionHandler{manager: manager}
}

// StartOrder godoc
// @Summary  Open a repair order composition session
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    payload body request.StartOrderRequest false "start options"
// @Success  201 {object} response.CompositionResponse
// @Router   /orders [post]
func (h *CompositionHandler) StartOrder(c *gin.Context) {
	var payload request.StartOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidCompositionPayload.HTTPStatus, errInvalidCompositionPayload.ToHTTPError())
			return
		}
	}

	view, err := h.manager.Start(payload.RestoreFromCache)
	if err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCompositionView(view))
}

// GetOrder godoc
// @Summary  Fetch the aggregate view of a composition
// @Tags     orders
// @Produce  json
// @Param    id path string true "draft id"
// @Success  200 {object} response.CompositionResponse
// @Router   /orders/{id} [get]
func (h *CompositionHandler) GetOrder(c *gin.Context) {
	view, err := h.manager.Get(c.Param("id"))
	if err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompositionView(view))
}

// CachedDraft godoc
// @Summary  The restore offer: the locally cached draft, if any
// @Tags     orders
// @Produce  json
// @Success  200 {object} response.CachedDraftResponse
// @Router   /orders/cached-draft [get]
func (h *CompositionHandler) CachedDraft(c *gin.Context) {
	snap, ok, err := h.manager.CachedDraft()
	if err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCachedDraft(snap, ok))
}

// SetCustomer godoc
// @Summary  Attach or replace the order's customer
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "draft id"
// @Param    payload body request.CustomerRequest true "customer"
// @Success  200 {object} response.CompositionResponse
// @Router   /orders/{id}/customer [put]
func (h *CompositionHandler) SetCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompositionPayload.HTTPStatus, errInvalidCompositionPayload.ToHTTPError())
		return
	}

	view, err := h.manager.SetCustomer(c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompositionView(view))
}

// AddDevice godoc
// @Summary  Register a device on the order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "draft id"
// @Param    payload body request.DeviceRequest true "device"
// @Success  200 {object} response.CompositionResponse
// @Router   /orders/{id}/devices [post]
func (h *CompositionHandler) AddDevice(c *gin.Context) {
	var payload request.DeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompositionPayload.HTTPStatus, errInvalidCompositionPayload.ToHTTPError())
		return
	}

	view, err := h.manager.AddDevice(c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompositionView(view))
}

// RemoveDevice godoc
// @Summary  Remove a device (cascades its diagnosis budget)
// @Tags     orders
// @Produce  json
// @Param    id path string true "draft id"
// @Param    device_id path string true "device id"
// @Success  200 {object} response.CompositionResponse
// @Router   /orders/{id}/devices/{device_id} [delete]
func (h *CompositionHandler) RemoveDevice(c *gin.Context) {
	view, err := h.manager.RemoveDevice(c.Param("id"), c.Param("device_id"))
	if err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompositionView(view))
}

// ReorderDevices godoc
// @Summary  Move a device to a new position
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "draft id"
// @Param    payload body request.ReorderRequest true "indexes"
// @Success  200 {object} response.CompositionResponse
// @Router   /orders/{id}/devices/reorder [patch]
func (h *CompositionHandler) ReorderDevices(c *gin.Context) {
	var payload request.ReorderRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.FromIndex == nil || payload.ToIndex == nil {
		c.JSON(errInvalidCompositionPayload.HTTPStatus, errInvalidCompositionPayload.ToHTTPError())
		return
	}

	view, err := h.manager.ReorderDevice(c.Param("id"), *payload.FromIndex, *payload.ToIndex)
	if err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompositionView(view))
}

// SetDiagnosis godoc
// @Summary  Upsert a device's diagnosis budget (empty faults removes it)
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "draft id"
// @Param    device_id path string true "device id"
// @Param    payload body request.DiagnosisRequest true "diagnosis"
// @Success  200 {object} response.CompositionResponse
// @Router   /orders/{id}/devices/{device_id}/diagnosis [put]
func (h *CompositionHandler) SetDiagnosis(c *gin.Context) {
	var payload request.DiagnosisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompositionPayload.HTTPStatus, errInvalidCompositionPayload.ToHTTPError())
		return
	}

	view, err := h.manager.SetDiagnosisBudget(c.Param("id"), c.Param("device_id"), payload.ToEntity())
	if err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompositionView(view))
}

// SetPricing godoc
// @Summary  Patch the order-level discount and tracked deposit
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "draft id"
// @Param    payload body request.PricingRequest true "pricing"
// @Success  200 {object} response.CompositionResponse
// @Router   /orders/{id}/pricing [patch]
func (h *CompositionHandler) SetPricing(c *gin.Context) {
	var payload request.PricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompositionPayload.HTTPStatus, errInvalidCompositionPayload.ToHTTPError())
		return
	}

	view, err := h.manager.SetPricing(c.Param("id"), payload.GlobalDiscount, payload.Deposit)
	if err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompositionView(view))
}

// Navigate godoc
// @Summary  Explicit section navigation (backward always allowed)
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "draft id"
// @Param    payload body request.NavigateRequest true "target section"
// @Success  200 {object} response.CompositionResponse
// @Router   /orders/{id}/section [patch]
func (h *CompositionHandler) Navigate(c *gin.Context) {
	var payload request.NavigateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompositionPayload.HTTPStatus, errInvalidCompositionPayload.ToHTTPError())
		return
	}

	view, err := h.manager.Navigate(c.Param("id"), entities.Section(payload.Section))
	if err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompositionView(view))
}

// Finalize godoc
// @Summary  Finalize the order and close the session
// @Tags     orders
// @Produce  json
// @Param    id path string true "draft id"
// @Success  200 {object} response.FinalizeResponse
// @Router   /orders/{id}/finalize [post]
func (h *CompositionHandler) Finalize(c *gin.Context) {
	orderID, err := h.manager.Finalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FinalizeResponse{OrderID: orderID})
}

// Abandon godoc
// @Summary  Close the session with a final flush; the draft stays recoverable
// @Tags     orders
// @Param    id path string true "draft id"
// @Success  204
// @Router   /orders/{id} [delete]
func (h *CompositionHandler) Abandon(c *gin.Context) {
	if err := h.manager.Abandon(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCompositionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCompositionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCompositionNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Composition not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoCachedDraft):
		return pkg.NewDomainErrorSimple("NO_CACHED_DRAFT", "No cached draft available", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownDevice):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found on this order", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidDevice),
		errors.Is(err, usecase.ErrInvalidBudget),
		errors.Is(err, usecase.ErrInvalidSection),
		errors.Is(err, usecase.ErrNegativeAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNavigationBlocked):
		return pkg.NewDomainErrorSimple("SECTION_GATE_BLOCKED", "Section prerequisites not satisfied", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotValid):
		return pkg.NewDomainErrorSimple("ORDER_NOT_VALID", "Order is not ready to finalize", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
