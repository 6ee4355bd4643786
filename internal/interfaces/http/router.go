package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukastock/duka-stock-api/internal/application/auth"
	"github.com/dukastock/duka-stock-api/internal/application/inventory"
	"github.com/dukastock/duka-stock-api/internal/application/invite"
	"github.com/dukastock/duka-stock-api/internal/application/report"
	"github.com/dukastock/duka-stock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.InventoryUseCase
	StockUC     *inventory.StockUseCase
	InviteUC    *invite.InviteUseCase
	ReportUC    *report.ReportUseCase
	AIUC        *report.AIUseCase
	PDFUC       *report.PDFUseCase
	JWTSecret   string
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
	bossOnly := RequireRole(entity.RoleBoss)

	// Árbol de inventario (boss y worker; el worker ve buying_price=0)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	protected.Get("/inventory", inventoryHandler.GetTree)

	// Categorías y sub-categorías (solo boss)
	categories := protected.Group("/categories", bossOnly)
	categories.Post("/", inventoryHandler.CreateCategory)
	categories.Put("/:id", inventoryHandler.UpdateCategory)
	categories.Post("/:id/subcategories", inventoryHandler.CreateSubCategory)

	subcategories := protected.Group("/subcategories")
	subcategories.Put("/:id", bossOnly, inventoryHandler.UpdateSubCategory)

	// Stock e ítems
	stockHandler := NewStockHandler(deps.StockUC)
	subcategories.Post("/:id/stock", bossOnly, stockHandler.AddStock)
	items := protected.Group("/items")
	items.Post("/:id/sell", stockHandler.Sell) // boss y worker
	items.Post("/:id/revert", bossOnly, stockHandler.Revert)
	items.Delete("/:id", bossOnly, stockHandler.DeleteItem)

	// Invitaciones (solo boss)
	invites := protected.Group("/invites", bossOnly)
	inviteHandler := NewInviteHandler(deps.InviteUC)
	invites.Post("/", inviteHandler.Create)
	invites.Get("/", inviteHandler.List)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.AIUC, deps.PDFUC)
	reports.Get("/financial", bossOnly, reportHandler.Financial)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/sales/pdf", reportHandler.SalesPDF)
	reports.Get("/low-stock", bossOnly, reportHandler.LowStock)
	reports.Get("/insight", bossOnly, reportHandler.Insight)
}
