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

	"github.com/aslanalper2516/wmb-admin-api/internal/application/auth"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/export"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/propagation"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/usecase"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/menutree"
	infrapdf "github.com/aslanalper2516/wmb-admin-api/internal/infrastructure/pdf"
	"github.com/aslanalper2516/wmb-admin-api/internal/infrastructure/postgres"
	"github.com/aslanalper2516/wmb-admin-api/internal/infrastructure/xmlfeed"
	httpRouter "github.com/aslanalper2516/wmb-admin-api/internal/interfaces/http"
	"github.com/aslanalper2516/wmb-admin-api/pkg/config"
	"github.com/aslanalper2516/wmb-admin-api/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	asgRepo := postgres.NewCategoryAssignmentRepository(pool)
	methodRepo := postgres.NewSalesMethodRepository(pool)
	linkRepo := postgres.NewBranchMethodLinkRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	priceRepo := postgres.NewPriceRepository(pool)
	currencyRepo := postgres.NewCurrencyRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	usageRepo := postgres.NewIngredientUsageRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)

	engine := propagation.NewEngine(linkRepo, priceRepo, log)
	builder := menutree.NewBuilder(cfg.Menu.Locale)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo, linkRepo, engine)
	menuUC := usecase.NewMenuUseCase(menuRepo, asgRepo, categoryRepo, builder, cfg.Menu.IndentUnit)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	methodUC := usecase.NewMethodUseCase(methodRepo)
	productUC := usecase.NewProductUseCase(productRepo, branchRepo, linkRepo, priceRepo)
	priceUC := usecase.NewPriceUseCase(priceRepo, productRepo, branchRepo, linkRepo, engine)
	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo, usageRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	currencyUC := usecase.NewCurrencyUseCase(currencyRepo)

	// Exportaciones de carta: PDF con maroto, feed XML con etree
	exportUC := export.NewMenuExportUseCase(
		menuRepo, branchRepo, asgRepo, productRepo, priceRepo, methodRepo,
		builder, infrapdf.NewMenuCardGenerator(), xmlfeed.NewFeedBuilder(),
		cfg.Menu.PDFCurrency,
	)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
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
		Title:    "WMB Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:    companyUC,
		BranchUC:     branchUC,
		MenuUC:       menuUC,
		CategoryUC:   categoryUC,
		MethodUC:     methodUC,
		ProductUC:    productUC,
		PriceUC:      priceUC,
		IngredientUC: ingredientUC,
		UserUC:       userUC,
		CurrencyUC:   currencyUC,
		ExportUC:     exportUC,
		AuthUC:       authUC,
		RoleRepo:     roleRepo,
		JWTSecret:    cfg.JWT.Secret,
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
