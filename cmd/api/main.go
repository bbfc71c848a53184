package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	favoriteDelivery "github.com/tair/starwars-api/internal/favorite/delivery/http"
	favoriteRepo "github.com/tair/starwars-api/internal/favorite/repository"
	"github.com/tair/starwars-api/internal/middleware"
	peopleDelivery "github.com/tair/starwars-api/internal/people/delivery/http"
	peopleRepo "github.com/tair/starwars-api/internal/people/repository"
	planetDelivery "github.com/tair/starwars-api/internal/planet/delivery/http"
	planetRepo "github.com/tair/starwars-api/internal/planet/repository"
	userDelivery "github.com/tair/starwars-api/internal/user/delivery/http"
	userRepo "github.com/tair/starwars-api/internal/user/repository"
	"github.com/tair/starwars-api/kafka"
	"github.com/tair/starwars-api/pkg/database"
	"github.com/tair/starwars-api/pkg/logger"
	"github.com/tair/starwars-api/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "starwars-api")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting starwars API")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "starwars"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Initialize repositories and run migrations
	people := peopleRepo.NewTracingPeopleRepository(db)
	planets := planetRepo.NewTracingPlanetRepository(db)
	users := userRepo.NewTracingUserRepository(db)
	favorites := favoriteRepo.NewTracingFavoriteRepository(db)

	if err := people.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate people")
	}
	if err := planets.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate planets")
	}
	if err := users.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate users")
	}
	if err := favorites.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate favorites")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher is optional; the API runs without a broker
	var events *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		events, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, events disabled")
			events = nil
		} else {
			defer events.Close()
		}
	}

	// Initialize HTTP handlers
	peopleHandler := peopleDelivery.NewPeopleHandler(people, favorites, events)
	planetHandler := planetDelivery.NewPlanetHandler(planets, favorites, events)
	userHandler := userDelivery.NewUserHandler(users, events)
	favoriteHandler := favoriteDelivery.NewFavoriteHandler(favorites, users, people, planets, events)

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.Logging)
	router.Use(func(next http.Handler) http.Handler {
		return middleware.Tracing("http-request", next)
	})

	favoriteHandler.RegisterRoutes(router)
	peopleHandler.RegisterRoutes(router)
	planetHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)

	registerHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

// registerHealthCheck exposes service and database health
func registerHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy","database":"down"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","database":"up"}`))
	}).Methods("GET")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
