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
	"github.com/jhoicas/comercio-api/internal/application/audit"
	"github.com/jhoicas/comercio-api/internal/application/auth"
	"github.com/jhoicas/comercio-api/internal/application/inventory"
	"github.com/jhoicas/comercio-api/internal/application/posting"
	"github.com/jhoicas/comercio-api/internal/application/reports"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
	"github.com/jhoicas/comercio-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/comercio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/comercio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/comercio-api/internal/interfaces/http"
	"github.com/jhoicas/comercio-api/pkg/config"
	"github.com/jhoicas/comercio-api/pkg/logger"
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

	branchRepo := postgres.NewBranchRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditor := audit.NewRecorder(auditRepo, log)
	notifier := mail.NewNotifier(cfg.SMTP, log)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	branchUC := usecase.NewBranchUseCase(branchRepo, auditor)
	productUC := usecase.NewProductUseCase(productRepo, auditor)
	vendorUC := usecase.NewVendorUseCase(vendorRepo, auditor)
	movementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, movRepo, auditor)
	postingUC := posting.NewPostTransactionUseCase(
		txRunner, branchRepo, vendorRepo, saleRepo, purchaseRepo, auditor, notifier,
	)
	reportUC := reports.NewReportUseCase(ledgerRepo, reportRepo, branchRepo, pdfGenerator)
	auditQueryUC := audit.NewQueryUseCase(auditRepo)
	authUC := auth.NewAuthUseCase(userRepo, branchRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Comercio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		BranchUC:   branchUC,
		ProductUC:  productUC,
		VendorUC:   vendorUC,
		PostingUC:  postingUC,
		MovementUC: movementUC,
		ReportUC:   reportUC,
		AuditUC:    auditQueryUC,
		JWTSecret:  cfg.JWT.Secret,
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
