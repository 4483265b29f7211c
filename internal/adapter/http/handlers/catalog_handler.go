package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "taller_movil/internal/adapter/http/dto/response"
	"taller_movil/internal/usecase"
	"taller_movil/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only catalog lookups the composition UI
// drives while the user types: brand/model resolution, fault lists,
// intervention templates and fault suggestions.

type CatalogHandler struct {
	catalog usecase.ICatalogQueryUseCase
}

func NewCatalogHandler(catalog usecase.ICatalogQueryUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ResolveModel godoc
// @Summary  Resolve a free-text brand/model pair against the catalog
// @Tags     catalog
// @Produce  json
// @Param    brand query string true "brand name"
// @Param    model query string true "model name"
// @Success  200 {object} response.ResolutionResponse
// @Router   /catalog/resolve [get]
func (h *CatalogHandler) ResolveModel(c *gin.Context) {
	res, err := h.catalog.ResolveModel(c.Request.Context(), c.Query("brand"), c.Query("model"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromResolution(res))
}

// ListBrands godoc
// @Summary  List known device brands
// @Tags     catalog
// @Produce  json
// @Success  200 {array} entities.Brand
// @Router   /catalog/brands [get]
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.catalog.ListBrands(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, brands)
}

// ListFaults godoc
// @Summary  List fault types, optionally filtered by category
// @Tags     catalog
// @Produce  json
// @Param    category query string false "fault category"
// @Success  200 {array} entities.Fault
// @Router   /catalog/faults [get]
func (h *CatalogHandler) ListFaults(c *gin.Context) {
	faults, err := h.catalog.ListFaults(c.Request.Context(), c.Query("category"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, faults)
}

// ListInterventions godoc
// @Summary  Intervention templates for a resolved model and fault
// @Tags     catalog
// @Produce  json
// @Param    model_id path string true "model id"
// @Param    fault_id query string true "fault id"
// @Success  200 {array} response.InterventionTemplateResponse
// @Router   /catalog/models/{model_id}/interventions [get]
func (h *CatalogHandler) ListInterventions(c *gin.Context) {
	templates, err := h.catalog.ListInterventions(c.Request.Context(), c.Param("model_id"), c.Query("fault_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInterventionTemplates(templates))
}

// SuggestFaults godoc
// @Summary  Most frequent faults recorded for a model
// @Tags     catalog
// @Produce  json
// @Param    model_id path string true "model id"
// @Param    limit query int false "max suggestions"
// @Success  200 {array} response.FaultSuggestionResponse
// @Router   /catalog/models/{model_id}/fault-suggestions [get]
func (h *CatalogHandler) SuggestFaults(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	suggestions, err := h.catalog.SuggestFaults(c.Request.Context(), c.Param("model_id"), limit)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFaultSuggestions(suggestions))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBrandName),
		errors.Is(err, usecase.ErrInvalidModelName),
		errors.Is(err, usecase.ErrInvalidModelID),
		errors.Is(err, usecase.ErrInvalidFaultID):
		return pkg.NewDomainErrorSimple("INVALID_CATALOG_QUERY", "Invalid catalog query", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
