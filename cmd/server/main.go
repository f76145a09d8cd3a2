package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/e2d/tresorerie-engine/internal/config"
	"github.com/e2d/tresorerie-engine/internal/handler"
	"github.com/e2d/tresorerie-engine/internal/repository"
	"github.com/e2d/tresorerie-engine/internal/service"
	"github.com/e2d/tresorerie-engine/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	pretRepo := repository.NewPretRepository(db)
	caisseRepo := repository.NewCaisseRepository(db)
	sanctionRepo := repository.NewSanctionRepository(db)
	reunionRepo := repository.NewReunionRepository(db)

	// Initialize service
	tresorerieService := service.NewTresorerieService(pretRepo, caisseRepo, sanctionRepo, reunionRepo, redisClient, cfg)
	tresorerieHandler := handler.NewTresorerieHandler(tresorerieService)
	healthHandler := handler.NewHealthHandler(db, redisClient, cfg.GetHealthTimeout())

	// Setup routes
	router := setupRoutes(tresorerieHandler, healthHandler)

	// Start server
	server := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: response.LoggingMiddleware(response.CORSMiddleware(router)),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(tresorerieHandler *handler.TresorerieHandler, healthHandler *handler.HealthHandler) *mux.Router {
	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/prets", tresorerieHandler.CreerPret).Methods("POST")
	api.HandleFunc("/prets/retard", tresorerieHandler.ListPretsEnRetard).Methods("GET")
	api.HandleFunc("/prets/{pretId}/resume", tresorerieHandler.GetResumePret).Methods("GET")
	api.HandleFunc("/prets/{pretId}/paiements", tresorerieHandler.EnregistrerPaiement).Methods("POST")
	api.HandleFunc("/prets/{pretId}/reconduction", tresorerieHandler.ReconduirePret).Methods("POST")

	api.HandleFunc("/caisse/synthese", tresorerieHandler.GetSynthese).Methods("GET")
	api.HandleFunc("/caisse/operations", tresorerieHandler.AjouterOperation).Methods("POST")
	api.HandleFunc("/caisse/operations/{opId}", tresorerieHandler.SupprimerOperation).Methods("DELETE")

	api.HandleFunc("/alertes", tresorerieHandler.GetAlertes).Methods("GET")

	return router
}
