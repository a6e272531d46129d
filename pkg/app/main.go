package app

import (
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/cache"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/config"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/database"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/events"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Passed to each service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Cfg      *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
}
