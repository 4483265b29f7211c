package handlers

import (
	"errors"
	"net/http"

	request "taller_movil/internal/adapter/http/dto/request"
	response "taller_movil/internal/adapter/http/dto/response"
	"taller_movil/internal/usecase"
	"taller_movil/pkg"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	directory usecase.ICustomerDirectoryUseCase
}

func NewCustomerHandler(directory usecase.ICustomerDirectoryUseCase) *CustomerHandler {
	return &CustomerHandler{directory: directory}
}

// Search godoc
// @Summary  Search the customer directory by name, phone or national id
// @Tags     customers
// @Produce  json
// @Param    q query string true "search term"
// @Success  200 {array} response.CustomerResponse
// @Router   /customers [get]
func (h *CustomerHandler) Search(c *gin.Context) {
	customers, err := h.directory.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// Create godoc
// @Summary  Register a new customer in the directory
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    payload body request.CustomerRequest true "customer"
// @Success  201 {object} response.CustomerResponse
// @Router   /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CUSTOMER", "Invalid customer payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.directory.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSearchTerm),
		errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER", "Invalid customer data", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
