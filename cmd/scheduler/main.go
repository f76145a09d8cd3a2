package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/e2d/tresorerie-engine/internal/config"
	"github.com/e2d/tresorerie-engine/internal/repository"
	"github.com/e2d/tresorerie-engine/internal/service"
)

func main() {
	log.Println("Starting tresorerie scheduler...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	tresorerieService := service.NewTresorerieService(
		repository.NewPretRepository(db),
		repository.NewCaisseRepository(db),
		repository.NewSanctionRepository(db),
		repository.NewReunionRepository(db),
		redisClient,
		cfg,
	)

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatalf("Invalid scheduler timezone %q: %v", cfg.Scheduler.Timezone, err)
	}

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	// Schedule tasks
	setupCronJobs(c, tresorerieService, cfg)

	// Start the scheduler
	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, svc *service.TresorerieService, cfg *config.Config) {
	// Daily job to rebuild the caisse synthese cache (runs at midnight)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		log.Println("Running daily synthese refresh job...")
		refreshSynthese(svc, cfg)
	})
	if err != nil {
		log.Printf("Error scheduling synthese refresh job: %v", err)
	}

	// Morning job to log the alert digest (runs at 7 AM)
	_, err = c.AddFunc("0 0 7 * * *", func() {
		log.Println("Running daily alert scan job...")
		scanAlertes(svc)
	})
	if err != nil {
		log.Printf("Error scheduling alert scan job: %v", err)
	}

	log.Println("Cron jobs scheduled successfully")
}

func refreshSynthese(svc *service.TresorerieService, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	synthese, err := svc.RefreshSynthese(ctx)
	if err != nil {
		log.Printf("Synthese refresh failed: %v", err)
		return
	}

	log.Printf("Synthese refreshed: fond total %s, prets en cours %s",
		synthese.FondTotal.String(), synthese.PretsEnCours.String())

	empruntable := synthese.FondTotal.Sub(synthese.PretsEnCours)
	if empruntable.LessThan(cfg.GetSeuilAlerteEmpruntable()) {
		log.Printf("Fonds empruntables bas: %s (seuil %s)",
			empruntable.String(), cfg.Business.SeuilAlerteEmpruntable)
	}
}

func scanAlertes(svc *service.TresorerieService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	alertes, err := svc.GetAlertes(ctx)
	if err != nil {
		log.Printf("Alert scan failed: %v", err)
		return
	}

	for _, a := range alertes {
		log.Printf("[%s] %s: %s", a.Niveau, a.Titre, a.Message)
	}
	log.Printf("Alert scan done: %d alerts", len(alertes))
}
