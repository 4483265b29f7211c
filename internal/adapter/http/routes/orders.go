package routes

import (
	"taller_movil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathCatalog   = "/catalog"
	PathCustomers = "/customers"
)

func addOrderRoutes(rg *gin.RouterGroup, compositionHandler *handlers.CompositionHandler, depositHandler *handlers.DepositHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", compositionHandler.StartOrder)
		orders.GET("/cached-draft", compositionHandler.CachedDraft)

		orders.GET("/:id", compositionHandler.GetOrder)
		orders.DELETE("/:id", compositionHandler.Abandon)

		orders.PUT("/:id/customer", compositionHandler.SetCustomer)

		orders.POST("/:id/devices", compositionHandler.AddDevice)
		orders.PATCH("/:id/devices/reorder", compositionHandler.ReorderDevices)
		orders.DELETE("/:id/devices/:device_id", compositionHandler.RemoveDevice)
		orders.PUT("/:id/devices/:device_id/diagnosis", compositionHandler.SetDiagnosis)

		orders.PATCH("/:id/pricing", compositionHandler.SetPricing)
		orders.PATCH("/:id/section", compositionHandler.Navigate)

		orders.POST("/:id/deposit/payments", depositHandler.Collect)
		orders.GET("/:id/deposit/payments", depositHandler.ListByDraft)

		orders.POST("/:id/finalize", compositionHandler.Finalize)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/resolve", catalogHandler.ResolveModel)
		catalog.GET("/brands", catalogHandler.ListBrands)
		catalog.GET("/faults", catalogHandler.ListFaults)
		catalog.GET("/models/:model_id/interventions", catalogHandler.ListInterventions)
		catalog.GET("/models/:model_id/fault-suggestions", catalogHandler.SuggestFaults)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.Search)
		customers.POST("", customerHandler.Create)
	}
}
