package main

import (
	"crypto/tls"
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/username/celuventas/backend/src/config"
	"github.com/username/celuventas/backend/src/database"
	"github.com/username/celuventas/backend/src/handlers"
	"github.com/username/celuventas/backend/src/logger"
	"github.com/username/celuventas/backend/src/services"
	"golang.org/x/time/rate"
)

func proxyHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Forwarded-Proto") == "https" {
			r.URL.Scheme = "https"
			r.TLS = &tls.ConnectionState{}
		}
		next.ServeHTTP(w, r)
	})
}

var limiter *rate.Limiter

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded", "path", r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	allowedOrigins := make(map[string]bool)
	for _, origin := range config.Cfg.AllowedOrigins {
		allowedOrigins[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With, If-None-Match")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	logger.L.Info("Celuventas backend server starting...")

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	database.RunMigrations(config.Cfg.DatabasePath, config.Cfg.MigrationsPath)

	limiter = rate.NewLimiter(rate.Every(config.Cfg.RateLimitInterval), config.Cfg.RateLimitBurst)

	reportCache := cache.New(config.Cfg.ReportCacheTTL, config.Cfg.ReportCacheCleanupPeriod)
	reportService := services.NewReportService(database.DB, reportCache)

	reportHandler := handlers.NewReportHandler(reportService)
	paymentHandler := handlers.NewPaymentHandler(reportService)
	saleHandler := handlers.NewSaleHandler(reportService)
	purchaseHandler := handlers.NewPurchaseHandler(reportService)
	expenseHandler := handlers.NewExpenseHandler(reportService)
	catalogHandler := handlers.NewCatalogHandler()
	customerHandler := handlers.NewCustomerHandler()
	statsHandler := handlers.NewStatsHandler()

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(handlers.ContextualLoggerMiddleware)
	r.Use(proxyHeadersMiddleware)
	r.Use(enableCORS)
	r.Use(rateLimitMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Celuventas Backend is running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/reports/profit", reportHandler.HandleGetProfitReport)

		r.Get("/models", catalogHandler.HandleListModels)
		r.Post("/models", catalogHandler.HandleCreateModel)
		r.Get("/products", catalogHandler.HandleListProducts)
		r.Post("/products", catalogHandler.HandleCreateProduct)

		r.Get("/customers", customerHandler.HandleListCustomers)
		r.Post("/customers", customerHandler.HandleCreateCustomer)

		r.Get("/purchases", purchaseHandler.HandleListPurchases)
		r.Post("/purchases", purchaseHandler.HandleCreatePurchase)

		r.Get("/sales", saleHandler.HandleListSales)
		r.Post("/sales", saleHandler.HandleCreateSale)

		r.Get("/payments", paymentHandler.HandleListPayments)
		r.Post("/payments", paymentHandler.HandleCreatePayment)
		r.Put("/payments/{id}", paymentHandler.HandleUpdatePayment)
		r.Delete("/payments/{id}", paymentHandler.HandleDeletePayment)

		r.Get("/expenses", expenseHandler.HandleListExpenses)
		r.Post("/expenses", expenseHandler.HandleCreateExpense)

		r.Get("/stats/top-products", statsHandler.HandleGetTopProducts)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
		}
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
