package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/api/handlers"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/api/middleware"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/cache"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/config"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/health"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/jobs"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/metrics"
	repository "github.com/rideon-labs/motorcycle-rental-platform/internal/repositories"
	service "github.com/rideon-labs/motorcycle-rental-platform/internal/services"
	"github.com/rideon-labs/motorcycle-rental-platform/pkg/sendGrid"
	"github.com/rideon-labs/motorcycle-rental-platform/pkg/stripe"
)

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Host + ":" + cfg.RedisConnect.Port,
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	catalogCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	jwtKey := []byte(cfg.Security.JWTKey)
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey)
	sendGridClient := sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	motorcycleService := service.NewMotorcycleService(repos.Motorcycle, catalogCache)
	motorcycleHandler := handlers.NewMotorcycleHandler(motorcycleService)
	promoCodeService := service.NewPromoCodeService(repos.PromoCode)
	promoCodeHandler := handlers.NewPromoCodeHandler(promoCodeService)
	cartService := service.NewCartService(repos.Cart, repos.PromoCode, motorcycleService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutService := service.NewCheckoutService(cartService, stripeClient, sendGridClient, cfg.Stripe.Currency)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	quoteHandler := handlers.NewQuoteHandler(motorcycleService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:           repos.DB,
		RedisClient:  redisClient,
		StripeClient: stripeClient,
	})
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	sweeper := jobs.NewExpirySweeper(promoCodeService, logger)
	if err := sweeper.Start(context.Background()); err != nil {
		slog.Error("❌ Error starting promo code expiry sweep", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/motorcycles", authMiddleware.Authenticate(motorcycleHandler.CreateMotorcycle()))
	routerMux.HandleFunc("GET /api/v1/motorcycles/{id}", motorcycleHandler.GetMotorcycle())
	routerMux.HandleFunc("PUT /api/v1/motorcycles/{id}", authMiddleware.Authenticate(motorcycleHandler.UpdateMotorcycle()))
	routerMux.HandleFunc("GET /api/v1/motorcycles", motorcycleHandler.ListMotorcycles())
	routerMux.HandleFunc("GET /api/v1/carts", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/carts/items/{motorcycleId}", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("DELETE /api/v1/carts/items/{motorcycleId}", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/v1/carts", authMiddleware.Authenticate(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/carts/coupon", authMiddleware.Authenticate(cartHandler.ApplyCoupon()))
	routerMux.HandleFunc("DELETE /api/v1/carts/coupon", authMiddleware.Authenticate(cartHandler.RemoveCoupon()))
	routerMux.HandleFunc("POST /api/v1/promocodes", authMiddleware.Authenticate(promoCodeHandler.CreatePromoCode()))
	routerMux.HandleFunc("GET /api/v1/promocodes/{id}", authMiddleware.Authenticate(promoCodeHandler.GetPromoCode()))
	routerMux.HandleFunc("GET /api/v1/promocodes", authMiddleware.Authenticate(promoCodeHandler.ListPromoCodes()))
	routerMux.HandleFunc("PUT /api/v1/promocodes/{id}", authMiddleware.Authenticate(promoCodeHandler.UpdatePromoCode()))
	routerMux.HandleFunc("PATCH /api/v1/promocodes/{id}/status", authMiddleware.Authenticate(promoCodeHandler.UpdatePromoCodeStatus()))
	routerMux.HandleFunc("DELETE /api/v1/promocodes/{id}", authMiddleware.Authenticate(promoCodeHandler.DeletePromoCode()))
	routerMux.HandleFunc("POST /api/v1/checkout", authMiddleware.Authenticate(checkoutHandler.Checkout()))
	routerMux.HandleFunc("POST /api/v1/pricing/quote", quoteHandler.Quote())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /healthz", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	sweeper.Stop()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := catalogCache.Close(); err != nil {
		slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
	}
}
