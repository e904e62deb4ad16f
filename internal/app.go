package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"civic-issues-api/config"
	"civic-issues-api/internal/application/ports"
	"civic-issues-api/internal/application/services"
	"civic-issues-api/internal/infrastructure/db/postgres"
	"civic-issues-api/internal/infrastructure/db/postgres/issue"
	"civic-issues-api/internal/infrastructure/db/postgres/user"
	applog "civic-issues-api/internal/infrastructure/logger"
	"civic-issues-api/internal/infrastructure/metrics"
	"civic-issues-api/internal/infrastructure/mq"
	"civic-issues-api/internal/infrastructure/tracing"
	"civic-issues-api/internal/interface/api/rest"
	"civic-issues-api/internal/interface/api/rest/middleware"
	"civic-issues-api/pkg/rmqconsumer"
)

type App struct {
	logger        *zap.Logger
	cfg           config.Config
	db            *pgxpool.Pool
	httpSrv       *http.Server
	router        *gin.Engine
	mCounter      *prometheus.CounterVec
	events        ports.EventPublisher
	mq            *mq.RabbitMQ
	mqConsumer    *rmqconsumer.Consumer
	traceShutdown tracing.ShutdownFunc
}

func NewApp(ctx context.Context) (*App, error) {
	// config
	envErr := godotenv.Load(".env")
	cfg := config.Load()

	// logger
	logger, err := applog.New(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	if envErr != nil {
		logger.Warn("no .env file loaded, using process environment", zap.Error(envErr))
	}

	// metrics
	mCounter := metrics.NewCounter(prometheus.DefaultRegisterer)
	mDuration := metrics.NewRequestDuration(prometheus.DefaultRegisterer)

	// tracing
	tp, traceShutdown, err := tracing.Init(ctx, cfg.Tracing, cfg.App.Env)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := newRouter(logger, tp, mCounter, mDuration)

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn, cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err = postgres.Migrate(ctx, dbPool, logger); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	app := &App{
		logger:        logger,
		cfg:           cfg,
		db:            dbPool,
		httpSrv:       httpSrv,
		router:        r,
		mCounter:      mCounter,
		events:        mq.Nop{},
		traceShutdown: traceShutdown,
	}

	if !cfg.EventsEnabled() {
		logger.Info("RABBITMQ_HOST is empty, change events are disabled")
		return app, nil
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	//rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger)
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = rmqConsumer.Init(mq.RoutingKeys()); err != nil {
		logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}

	app.events, app.mq, app.mqConsumer = rbMQ, rbMQ, rmqConsumer

	return app, nil
}

func newRouter(
	logger *zap.Logger,
	tp trace.TracerProvider,
	mCounter *prometheus.CounterVec,
	mDuration *prometheus.HistogramVec,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Tracing(tp))
	r.Use(middleware.RequestLogGin(logger, mCounter, mDuration))
	return r
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mqConsumer != nil {
		a.mqConsumer.Close()
	}
	if a.mq != nil {
		a.mq.Close()
	}
	if a.traceShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.traceShutdown(ctx); err != nil {
			a.logger.Warn("tracer shutdown error", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(ctx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := user.NewRepository(a.db)
	issueRepo := issue.NewRepository(a.db)

	// services
	userService := services.NewUserService(userRepo, a.events, a.mCounter, a.logger)
	issueService := services.NewIssueService(issueRepo, userRepo, a.events, a.mCounter, a.logger)

	// controllers
	rest.NewUserController(a.router, userService, a.logger)
	rest.NewIssueController(a.router, issueService, a.logger)
	rest.NewHealthController(a.router, a.db, a.logger)

	// ops
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
