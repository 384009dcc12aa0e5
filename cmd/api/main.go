package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/greenpulse/greenpulse/internal/config"
	"github.com/greenpulse/greenpulse/internal/dashboard"
	"github.com/greenpulse/greenpulse/internal/handler"
	"github.com/greenpulse/greenpulse/internal/repository"
	"github.com/greenpulse/greenpulse/internal/service"
	"github.com/greenpulse/greenpulse/internal/simulate"
	"github.com/greenpulse/greenpulse/internal/ws"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DemoMode() {
		logger.Info("BACKEND_URL not set, responses are simulated in process")
	}

	// Initialize layers
	src := simulate.NewSource(cfg.SimulationSeed)
	results := repository.NewResultStore(cfg.ResultTTL)
	svc := service.NewService(src, results, logger)
	hub := ws.NewHub(logger)
	ticker := dashboard.NewTicker(src, logger)
	h := handler.NewHandler(svc, ticker, hub, logger)

	if err := ticker.Start(); err != nil {
		logger.Fatalf("Failed to start dashboard ticker: %v", err)
	}
	defer ticker.Stop()

	// Setup router
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	r.Handle("/ws", hub).Methods("GET")

	// The dashboard is served from a different origin in every deployment.
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	})

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           corsHandler(r),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
