package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/SocietyBooker/internal/broker"
	"github.com/stpnv0/SocietyBooker/internal/config"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/handler"
	"github.com/stpnv0/SocietyBooker/internal/middleware"
	"github.com/stpnv0/SocietyBooker/internal/notification"
	"github.com/stpnv0/SocietyBooker/internal/repository"
	"github.com/stpnv0/SocietyBooker/internal/repository/memory"
	"github.com/stpnv0/SocietyBooker/internal/router"
	"github.com/stpnv0/SocietyBooker/internal/scheduler"
	"github.com/stpnv0/SocietyBooker/internal/service"
	"github.com/stpnv0/SocietyBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

type publisher interface {
	ports.EventPublisher
	io.Closer
}

type repos struct {
	pools      ports.PoolRepo
	resources  ports.ResourceRepo
	events     ports.EventRepo
	ledger     ports.LedgerRepo
	members    ports.MemberRepo
	challenges ports.ChallengeStore
}

func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"SocietyBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if cfg.Storage.Driver == config.DriverPostgres {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initBroker(); err != nil {
		return nil, fmt.Errorf("init broker: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	if a.cfg.Storage.Driver == config.DriverMemory && a.cfg.Redis.Addr == "" {
		a.log.Warn("redis address is empty, login challenges kept in memory")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initBroker() error {
	if a.cfg.RabbitMQ.URL == "" {
		a.log.Warn("rabbitmq url is empty, booking events not published")
		a.publisher = broker.Noop{}
		return nil
	}

	p, err := broker.NewPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange)
	if err != nil {
		return err
	}

	a.publisher = p
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "rabbitmq connected",
		logger.String("exchange", a.cfg.RabbitMQ.Exchange),
	)

	return nil
}

func (a *App) buildRepos() repos {
	var r repos

	if a.db != nil {
		r = repos{
			pools:     repository.NewPoolRepo(a.db),
			resources: repository.NewResourceRepo(a.db),
			events:    repository.NewEventRepo(a.db),
			ledger:    repository.NewLedgerRepo(a.db),
			members:   repository.NewMemberRepo(a.db),
		}
	} else {
		store := memory.NewStore()
		r = repos{
			pools:     store.Pools(),
			resources: store.Resources(),
			events:    store.Events(),
			ledger:    store.Ledger(),
			members:   store.Members(),
		}
		a.log.Warn("memory storage driver in use, data is lost on restart")
	}

	if a.redis != nil {
		r.challenges = repository.NewChallengeStore(a.redis)
	} else {
		r.challenges = memory.NewChallengeStore()
	}

	return r
}

func (a *App) initServices() error {
	r := a.buildRepos()

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	allocationService := service.NewAllocationService(
		r.resources, r.events, r.ledger, r.members,
		n, a.publisher,
		a.cfg.Scheduler.ReconcileGrace,
		a.log,
	)
	inventoryService := service.NewInventoryService(r.pools, r.resources, r.events, r.members)
	reportService := service.NewReportService(r.resources, r.events, r.ledger)
	authService := service.NewAuthService(r.members, r.challenges, n, service.AuthOptions{
		Secret:      a.cfg.Auth.JWTSecret,
		TokenTTL:    a.cfg.Auth.TokenTTL,
		CodeTTL:     a.cfg.Auth.CodeTTL,
		CodeLength:  a.cfg.Auth.CodeLength,
		MaxAttempts: a.cfg.Auth.MaxAttempts,
	}, a.log)

	if err = a.bootstrapAdmin(inventoryService, r.members); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	a.scheduler = scheduler.New(
		allocationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(allocationService, inventoryService, reportService, authService)
	rt := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		authService,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      rt,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// bootstrapAdmin creates the configured first admin once, so a fresh
// building can be set up through the API.
func (a *App) bootstrapAdmin(inventory *service.InventoryService, members ports.MemberRepo) error {
	b := a.cfg.Bootstrap
	if b.AdminPhone == "" {
		return nil
	}

	ctx := context.Background()
	if _, err := members.GetByPhone(ctx, b.AdminPhone); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrMemberNotFound) {
		return err
	}

	var chatID *int64
	if b.AdminChatID != 0 {
		chatID = &b.AdminChatID
	}

	m, err := inventory.CreateMember(ctx, domain.CreateMemberInput{
		BuildingID:     b.BuildingID,
		UnitID:         b.AdminUnit,
		Name:           b.AdminName,
		Phone:          b.AdminPhone,
		Role:           domain.RoleAdmin,
		TelegramChatID: chatID,
	})
	if err != nil {
		return err
	}

	a.log.Info("bootstrap admin created",
		logger.String("member_id", m.ID),
		logger.String("building_id", m.BuildingID),
	)
	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.Error("failed to close publisher", logger.String("error", err.Error()))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("failed to close redis", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
