// @title Kanso Widgets API
// @version 1.0
// @description Calendar heatmaps, progress rings and daily phrases for home-screen widgets.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/comitanigiacomo/kanso-widgets/docs"
	"github.com/comitanigiacomo/kanso-widgets/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-widgets/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-widgets/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-widgets/internal/config"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/services"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/workers"
)

const tokenDuration = 30 * 24 * time.Hour

type app struct {
	router *gin.Engine
	worker *workers.RefreshWorker
	tokens *services.TokenService
}

// newApp wires services and routes. db and rdb may be nil.
func newApp(cfg *config.Config, engineCfg domain.EngineConfig, source domain.ActivitySource, db *sqlx.DB, rdb *redis.Client) *app {
	heatmapService := services.NewHeatmapService(source, engineCfg)
	progressService := services.NewProgressService(engineCfg)
	quoteService := services.NewQuoteService(nil)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, tokenDuration)

	worker := workers.NewRefreshWorker(heatmapService)

	deps := adapterHTTP.RouterDependencies{
		WidgetHandler:  adapterHTTP.NewWidgetHandler(heatmapService, progressService, quoteService, worker, engineCfg),
		TokenValidator: tokenService,
		Redis:          rdb,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
		StartTime:      time.Now(),
	}
	if db != nil {
		deps.DB = db
	}

	return &app{
		router: adapterHTTP.NewRouter(deps),
		worker: worker,
		tokens: tokenService,
	}
}

func main() {
	cfg := config.Load()

	engineCfg, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		log.Fatalf("Critical: Failed to load widget profile: %v", err)
	}

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	var source domain.ActivitySource = repository.NewPostgresActivitySource(db)

	rdb, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("[CACHE] Running without Redis: %v", err)
	} else {
		defer rdb.Close()
		source = repository.NewCachedActivitySource(source, rdb, cfg.CacheTTL)
		log.Println("Redis connected, activity cache enabled.")
	}

	a := newApp(cfg, engineCfg, source, db, rdb)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.worker.Start(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Kanso Widgets running on http://localhost:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
		os.Exit(1)
	}

	<-a.worker.Done()
	log.Println("Server stopped gracefully.")
}
