package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/config"
	"github.com/eventmaster/core/internal/database"
	"github.com/eventmaster/core/internal/middleware"
	"github.com/eventmaster/core/internal/modules/auth"
	pkgcron "github.com/eventmaster/core/internal/pkg/cron"
	"github.com/eventmaster/core/internal/pkg/metrics"
	pkgredis "github.com/eventmaster/core/internal/pkg/redis"
	pkgsession "github.com/eventmaster/core/internal/pkg/session"
	"github.com/eventmaster/core/internal/pkg/token"
)

// App holds all application dependencies.
type App struct {
	cfg      *config.AppConfig
	router   *gin.Engine
	db       *gorm.DB
	logger   *zap.Logger
	cancel   context.CancelFunc
	sched    *pkgcron.Scheduler
	sessions *pkgsession.Store
	metrics  *metrics.Metrics
}

// New initializes the application: DB → seed → Redis → routes → cron.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	if err := auth.Seed(ctx, db, logger, cfg.RootAdmin); err != nil {
		cancel()
		return nil, fmt.Errorf("seed: %w", err)
	}

	// Redis only backs rate limiting, a missing instance degrades to an
	// unthrottled server instead of failing startup.
	var rc *pkgredis.Client
	if c, err := pkgredis.Connect(cfg.Redis.RedisURLValue()); err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
	} else {
		rc = c
	}

	codec, err := token.NewCodec(cfg.Session.Secret, cfg.Session.TokenAlphabet, cfg.Session.TokenLength)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("token codec: %w", err)
	}
	sessions := pkgsession.NewStore(db, codec, time.Duration(cfg.Session.TTLHours)*time.Hour)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	m := metrics.New()
	router.Use(m.Middleware())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && cfg.IsProduction() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return originAllowed(patterns, origin)
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	sched := pkgcron.New()

	app := &App{
		cfg:      cfg,
		router:   router,
		db:       db,
		logger:   logger,
		cancel:   cancel,
		sched:    sched,
		sessions: sessions,
		metrics:  m,
	}

	if err := app.registerCronJobs(ctx); err != nil {
		cancel()
		return nil, err
	}
	go sched.Start(ctx)

	app.registerRoutes(rc)
	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown cleans up background goroutines.
func (a *App) Shutdown() { a.cancel() }
