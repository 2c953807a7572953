package main

import (
	"database/sql"
	"net/http"
	"os"
	"strings"

	"github.com/georgemunganga/printa-storefront/internal/events"
	"github.com/georgemunganga/printa-storefront/internal/metrics"
	"github.com/georgemunganga/printa-storefront/internal/modules/auth"
	"github.com/georgemunganga/printa-storefront/internal/modules/cart"
	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/modules/checkout"
	"github.com/georgemunganga/printa-storefront/internal/modules/design"
	"github.com/georgemunganga/printa-storefront/internal/modules/review"
	"github.com/georgemunganga/printa-storefront/internal/modules/settings"
	"github.com/georgemunganga/printa-storefront/internal/modules/sizing"
	"github.com/georgemunganga/printa-storefront/internal/modules/user"
	"github.com/georgemunganga/printa-storefront/internal/modules/wishlist"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on environment")
	}
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.WithError(err).Fatal("failed to reach database")
	}
	logger.Info("connected to the database")

	storefrontMetrics := metrics.New()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Handle("/metrics", promhttp.Handler())

	// ── Phase 1: Accounts ───────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo, []byte(os.Getenv("JWT_SECRET")))
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Phase 2: Browsing ───────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	designRepo := design.NewPostgresRepository(db)
	designService := design.NewService(designRepo)
	design.NewHandler(designService).RegisterRoutes(router)

	sizing.NewHandler().RegisterRoutes(router)

	// ── Phase 3: Cart ───────────────────────────────────────
	var cartRepo cart.Repository
	if os.Getenv("CART_STORAGE") == "memory" {
		cartRepo = cart.NewMemoryRepository()
	} else {
		cartRepo = cart.NewPostgresRepository(db)
	}
	carts := cart.NewManager(cartRepo, logger, storefrontMetrics)
	cart.NewHandler(carts).RegisterRoutes(router)

	// ── Phase 4: Wishlist ───────────────────────────────────
	wishlistRepo := wishlist.NewPostgresRepository(db)
	wishlistService := wishlist.NewService(wishlistRepo)
	wishlist.NewHandler(wishlistService).RegisterRoutes(router)

	// ── Phase 5: Checkout & Orders ──────────────────────────
	var publisher events.Publisher = events.NopPublisher{}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kafkaPublisher, err := events.NewKafkaPublisher(
			strings.Split(brokers, ","),
			envOr("KAFKA_ORDERS_TOPIC", "storefront.orders"),
			logger,
		)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect kafka publisher")
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	checkoutRepo := checkout.NewPostgresRepository(db)
	checkoutService := checkout.NewService(checkoutRepo, carts, publisher, logger, storefrontMetrics)
	checkout.NewHandler(checkoutService).RegisterRoutes(router)

	// ── Phase 6: Reviews & Settings ─────────────────────────
	reviewRepo := review.NewPostgresRepository(db)
	reviewService := review.NewService(reviewRepo)
	review.NewHandler(reviewService).RegisterRoutes(router)

	settingsRepo := settings.NewPostgresRepository(db)
	settingsService := settings.NewService(settingsRepo)
	settings.NewHandler(settingsService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := envOr("APP_PORT", "8080")
	logger.WithField("port", port).Info("storefront API starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
