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

	"github.com/joho/godotenv"

	"github.com/fortuna/athena/internal/api/rest"
	"github.com/fortuna/athena/internal/api/websocket"
	"github.com/fortuna/athena/internal/cache"
	"github.com/fortuna/athena/internal/config"
	"github.com/fortuna/athena/internal/ingest"
	"github.com/fortuna/athena/internal/ingest/browser"
	"github.com/fortuna/athena/internal/ingest/cisaa"
	"github.com/fortuna/athena/internal/ingest/gamesheet"
	"github.com/fortuna/athena/internal/publisher"
	"github.com/fortuna/athena/internal/scheduler"
	"github.com/fortuna/athena/internal/scrapejob"
	"github.com/fortuna/athena/internal/store"
	"github.com/fortuna/athena/internal/store/repository"
)

const (
	serviceName    = "athena"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - CISAA Results Service", serviceName, serviceVersion)

	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection
	db, err := store.NewDatabase(ctx, cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("✓ Connected to database")

	if err := db.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// Initialize Redis client with retry logic
	var redisCache *cache.RedisCache
	maxRetries := 30
	retryDelay := 2 * time.Second

	log.Println("Connecting to Redis...")
	for i := 0; i < maxRetries; i++ {
		redisCache, err = cache.NewRedisCache(cfg.RedisURL, cfg.CacheTTL)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
			time.Sleep(retryDelay)
		} else {
			log.Fatalf("Failed to connect to Redis after %d attempts: %v", maxRetries, err)
		}
	}
	defer redisCache.Close()

	log.Println("✓ Connected to Redis")

	events := publisher.NewRedisStreamPublisher(redisCache.Client())
	repo := repository.NewPostgres(db)

	pipeline := ingest.NewPipeline(
		cisaa.NewClient(cfg.CISAA(), cfg.HomeSchool, nil),
		gamesheet.NewParser(cfg.GamesheetURL, cfg.Retry, nil),
		cfg.HomeSchool,
		cfg.Location,
		nil,
	)

	orchestrator := scheduler.NewOrchestrator(
		pipeline,
		browser.NewManager(cfg.Browser(), nil),
		repo,
		cfg.Scheduler(),
		scheduler.WithCache(redisCache),
		scheduler.WithPublisher(events),
	)
	if err := orchestrator.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	log.Println("✓ Scheduler started")

	jobs := scrapejob.NewService(scrapejob.NewRepository(db), orchestrator)
	jobs.Start()

	log.Println("✓ Scrape job service started")

	// Initialize REST API server
	restServer := rest.NewServer(cfg.RESTPort, rest.Deps{
		Repo:     repo,
		Cache:    redisCache,
		Home:     cfg.HomeSchool,
		Location: cfg.Location,
		Jobs:     jobs,
		Checks: map[string]rest.HealthChecker{
			"postgres": db,
			"redis":    redisCache,
		},
	}, cfg.CORSAllowOrigins)
	go func() {
		log.Printf("Starting REST API server on port %s", cfg.RESTPort)
		if err := restServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("REST server error: %v", err)
		}
	}()

	// Initialize WebSocket server
	wsServer := websocket.NewServer(redisCache.Client(), cfg.CORSAllowOrigins)
	go func() {
		if err := wsServer.Start(ctx, cfg.WSPort); err != nil {
			log.Printf("WebSocket server error: %v", err)
		}
	}()

	log.Printf("✓ Athena v%s started successfully (home school: %s)", serviceVersion, cfg.HomeSchool.Name)
	log.Printf("  REST API: http://0.0.0.0:%s", cfg.RESTPort)
	log.Printf("  WebSocket: ws://0.0.0.0:%s/ws/scrape", cfg.WSPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down Athena gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("WebSocket server shutdown error: %v", err)
	}
	if err := jobs.Shutdown(shutdownCtx); err != nil {
		log.Printf("Scrape job service shutdown error: %v", err)
	}
	orchestrator.Stop()
	cancel()

	log.Println("Athena stopped")
}
