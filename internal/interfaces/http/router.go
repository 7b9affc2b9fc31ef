package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/audit"
	"github.com/jhoicas/comercio-api/internal/application/auth"
	"github.com/jhoicas/comercio-api/internal/application/inventory"
	"github.com/jhoicas/comercio-api/internal/application/posting"
	"github.com/jhoicas/comercio-api/internal/application/reports"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	BranchUC   *usecase.BranchUseCase
	ProductUC  *usecase.ProductUseCase
	VendorUC   *usecase.VendorUseCase
	PostingUC  *posting.PostTransactionUseCase
	MovementUC *inventory.RegisterMovementUseCase
	ReportUC   *reports.ReportUseCase
	AuditUC    *audit.QueryUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Branches (protegido; escritura solo admin)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	adminOnly := RequireRole(entity.RoleAdmin)
	branches.Post("/", adminOnly, branchHandler.Create)
	branches.Put("/:id", adminOnly, branchHandler.Update)
	branches.Delete("/:id", adminOnly, branchHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Vendors (protegido)
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", adminOnly, vendorHandler.Delete)

	// Sales y Purchases (protegido; motor de posteo)
	txHandler := NewTransactionHandler(deps.PostingUC)
	sales := protected.Group("/sales")
	sales.Post("/", txHandler.PostSale)
	sales.Get("/", txHandler.ListSales)
	sales.Get("/:id", txHandler.GetSale)
	purchases := protected.Group("/purchases")
	purchases.Post("/", txHandler.PostPurchase)
	purchases.Get("/", txHandler.ListPurchases)
	purchases.Get("/:id", txHandler.GetPurchase)

	// Stock movements (protegido; camino administrativo directo)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.MovementUC)
	stock.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleWarehouse), stockHandler.RegisterMovement)
	stock.Get("/movements", stockHandler.ListMovements)
	stock.Get("/movements/:id", stockHandler.GetMovement)
	products.Get("/:id/movements", stockHandler.ListByProduct)

	// Ledger, reportes y auditoría (protegido)
	reportHandler := NewReportHandler(deps.ReportUC, deps.AuditUC)
	ledgerRoles := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleAccountant)
	ledger := protected.Group("/ledger", ledgerRoles)
	ledger.Get("/", reportHandler.ListLedger)
	ledger.Get("/report", reportHandler.LedgerPDF)
	ledger.Get("/:id", reportHandler.GetLedgerEntry)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/daily-sales", reportHandler.DailySales)
	protected.Get("/audit-logs", RequireRole(entity.RoleAdmin, entity.RoleAccountant), reportHandler.ListAuditLogs)
}
