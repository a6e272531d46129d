package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/app"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/cache"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/config"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/database"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/events"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/logger"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/telemetry"
	ordersevents "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/events"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	db, err := database.New(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer db.Close()
	log.Info("database connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Cfg:      cfg,
		Db:       db,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, ordersevents.TopicItemCreated, handleItemCreated(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", ordersevents.TopicItemCreated,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{ordersevents.TopicItemCreated})
	return nil
}

// handleItemCreated returns a handler for certified-copy-item.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Loads the persisted document and warms the Redis read-model cache so
// subsequent reads are served from cache.
func handleItemCreated(a *app.Application) func(context.Context, *message.Message) error {
	repo := postgres.NewItemRepository(a.Db, nil)
	itemCache := cache.NewItemCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt ordersevents.ItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		item, err := repo.GetByID(ctx, evt.ItemID)
		if err != nil {
			return err
		}

		if err := itemCache.Set(ctx, item); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for item created event",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"item_id", evt.ItemID, "company_number", evt.CompanyNumber)
		}

		return nil
	}
}
