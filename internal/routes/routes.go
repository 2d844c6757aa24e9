// Package routes defines the API routing configuration. It wires the
// repositories, cache, metrics and the ledger engine together and mounts
// the HTTP surface on top.
package routes

import (
	"dwallet/internal/config"
	"dwallet/internal/handlers"
	"dwallet/internal/metrics"
	"dwallet/internal/middleware"
	"dwallet/internal/repositories"
	"dwallet/internal/repositories/cache"
	"dwallet/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, cfg *config.Config, db *gorm.DB, cacheService *cache.CacheService) {
	walletRepo := repositories.NewWalletRepository(db)

	walletService := wallet.NewService(
		walletRepo,
		cacheService,
		wallet.Config{},
		metrics.NewPrometheusCollector(),
	)

	walletHandler := handlers.NewWalletHandler(walletService)
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", authMiddleware.Handler)

	wallets := api.Group("/wallets")
	wallets.Post("/", walletHandler.CreateWallet)
	wallets.Get("/", walletHandler.ListWallets)
	wallets.Get("/:id", walletHandler.GetWallet)
	wallets.Get("/:id/balance", walletHandler.GetBalance)
	wallets.Post("/:id/deposit", walletHandler.Deposit)
	wallets.Post("/:id/withdraw", walletHandler.Withdraw)
	wallets.Post("/:id/transfer", walletHandler.Transfer)
	wallets.Get("/:id/transactions", walletHandler.FilterTransactions)
}
