package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rutvikbarbhai/stockflow/internal/application/alerts"
	"github.com/rutvikbarbhai/stockflow/internal/application/inventory"
	"github.com/rutvikbarbhai/stockflow/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC        *usecase.CompanyUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	ProductUC        *usecase.ProductUseCase
	SupplierUC       *usecase.SupplierUseCase
	ChangeLogUC      *usecase.ChangeLogUseCase
	ProvisionProduct *inventory.ProvisionProductUseCase
	AdjustQuantity   *inventory.AdjustQuantityUseCase
	RecordSale       *inventory.RecordSaleUseCase
	LowStock         *alerts.LowStockUseCase
	AlertWindowDays  int
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies (público: alta de empresas; la autenticación es externa)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token con company_id)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ProvisionProduct)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/bundle", productHandler.SetBundle)
	products.Get("/:id/bundle", productHandler.GetBundle)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	products.Post("/:id/suppliers", supplierHandler.LinkProduct)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustQuantity, deps.RecordSale, deps.ChangeLogUC)
	invGroup.Post("/adjustments", inventoryHandler.AdjustQuantity)
	invGroup.Get("/changes", inventoryHandler.ListChanges)
	protected.Post("/sales", inventoryHandler.RecordSale)

	// Alertas de stock bajo (protegido, acotado a la empresa del token)
	alertHandler := NewAlertHandler(deps.LowStock, deps.AlertWindowDays)
	protected.Get("/companies/:company_id/alerts/low-stock", alertHandler.LowStock)
}
