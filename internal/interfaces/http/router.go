package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-control-api/internal/application/analytics"
	"github.com/jhoicas/inventory-control-api/internal/application/inventory"
	"github.com/jhoicas/inventory-control-api/internal/application/usecase"
	"github.com/jhoicas/inventory-control-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	WarehouseUC *usecase.WarehouseUseCase
	AdjustStock *inventory.AdjustStockUseCase
	StockQuery  *inventory.StockQueryUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *analytics.ReportUseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Inventory: listado y ajuste transaccional
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.StockQuery, deps.Log)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/adjust", inventoryHandler.Adjust)
	invGroup.Get("/:productId/:warehouseId", inventoryHandler.GetLevel)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
	dashboard.Get("/recent-transactions", dashboardHandler.RecentTransactions)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Log)
	reports.Get("/inventory-value", reportHandler.InventoryValue)
	reports.Get("/inventory-value/pdf", reportHandler.InventoryValuePDF)
	reports.Get("/stock-levels", reportHandler.StockLevels)
	reports.Get("/transactions", reportHandler.Transactions)
	reports.Get("/transactions/:id", reportHandler.TransactionByID)
}
