package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dukastock/duka-stock-api/internal/application/auth"
	"github.com/dukastock/duka-stock-api/internal/application/inventory"
	"github.com/dukastock/duka-stock-api/internal/application/invite"
	"github.com/dukastock/duka-stock-api/internal/application/report"
	infraai "github.com/dukastock/duka-stock-api/internal/infrastructure/ai"
	infrapdf "github.com/dukastock/duka-stock-api/internal/infrastructure/pdf"
	"github.com/dukastock/duka-stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/dukastock/duka-stock-api/internal/interfaces/http"
	"github.com/dukastock/duka-stock-api/pkg/config"
	"github.com/dukastock/duka-stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	profileRepo := postgres.NewProfileRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	inviteRepo := postgres.NewInviteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(profileRepo, inviteRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventoryUC := inventory.NewInventoryUseCase(categoryRepo)
	stockUC := inventory.NewStockUseCase(itemRepo, categoryRepo, txRunner)
	inviteUC := invite.NewInviteUseCase(inviteRepo)
	reportUC := report.NewReportUseCase(categoryRepo, cfg.App.Currency)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	aiUC := report.NewAIUseCase(categoryRepo, anthropicSvc, cfg.App.Currency)

	pdfGenerator := infrapdf.NewMarotoSalesPDF(cfg.App.Name)
	pdfUC := report.NewPDFUseCase(categoryRepo, pdfGenerator, cfg.App.Currency)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Duka Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		StockUC:     stockUC,
		InviteUC:    inviteUC,
		ReportUC:    reportUC,
		AIUC:        aiUC,
		PDFUC:       pdfUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
