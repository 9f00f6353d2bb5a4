package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/srgjo27/airline_inventory/internal/adapter/cache"
	"github.com/srgjo27/airline_inventory/internal/adapter/handler"
	"github.com/srgjo27/airline_inventory/internal/adapter/notifier"
	"github.com/srgjo27/airline_inventory/internal/adapter/repository/postgres"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/ports"
	"github.com/srgjo27/airline_inventory/internal/core/services"
	"github.com/srgjo27/airline_inventory/internal/platform/config"
	"github.com/srgjo27/airline_inventory/internal/platform/database"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("airline inventory exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func run(args []string) error {
	flags := pflag.NewFlagSet("airline-inventory", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	envFile := flags.String("env-file", ".env", "path to a KEY=VALUE env file, skipped if missing")
	addr := flags.String("addr", "", "HTTP listen address (overrides config)")
	seedDemo := flags.Bool("seed-demo", false, "schedule a few demo flights at startup")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var archive ports.DepartureArchive
	if cfg.Database.Enabled() {
		db, err := database.NewPostgresDB(ctx, cfg.Database, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := postgres.NewDepartureRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
		archive = repo
	} else {
		logger.Info("database not configured, departures are kept in memory only")
	}

	hub := notifier.NewHub(logger)
	publishers := []ports.EventPublisher{hub}

	var seatCache ports.SeatCache
	if cfg.Redis.Enabled() {
		logger.Info("connecting to redis", "addr", cfg.Redis.Addr())

		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr(),
			DB:   cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Info("redis connected")

		seats := cache.NewSeatCache(redisClient, cfg.Redis.SeatTTL)
		seatCache = seats
		publishers = append(publishers, notifier.NewRedisPublisher(redisClient), seats)
	}

	pricing, err := services.NewPricingPolicy(cfg.Booking.Surcharge)
	if err != nil {
		return err
	}

	departures := domain.NewDepartureLog()
	dispatcher := services.NewDispatcher(cfg.Events.QueueSize, logger, publishers...)
	pool := services.NewWorkerPool(cfg.Booking.Workers, cfg.Booking.QueueSize, logger)

	catalog := services.NewCatalogService(departures, dispatcher, archive, logger)
	travellers := services.NewTravellerService(logger)
	booking := services.NewBookingService(catalog, travellers, pricing, pool, dispatcher, logger,
		services.WithTimeout(cfg.Booking.Timeout))

	if *seedDemo {
		if err := seed(catalog, time.Now()); err != nil {
			return err
		}
	}

	router := handler.NewRouter(handler.Handlers{
		Flights:    handler.NewFlightHandler(catalog, services.NewSeatMapService(catalog, seatCache, logger), hub),
		Bookings:   handler.NewBookingHandler(booking, catalog),
		Travellers: handler.NewTravellerHandler(travellers),
		Reports:    handler.NewReportHandler(catalog, services.NewAnalyticsService(departures)),
	}, logger)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(hubCtx)
		return nil
	})

	g.Go(func() error {
		logger.Info("server starting", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server startup failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)

		// Started booking units finish and their commits drain before the
		// hub stops fanning out.
		pool.Close()
		dispatcher.Close()
		stopHub()

		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server exiting")
	return nil
}
