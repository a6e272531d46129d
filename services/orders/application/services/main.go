// Package services wires the orders application services from shared
// infrastructure. Handlers depend on this package, never on infrastructure
// directly.
package services

import (
	"fmt"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/app"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/auth"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/cache"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/models"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/infrastructure/companiesapi"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/infrastructure/descriptions"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/infrastructure/persistence/postgres"
)

// Services aggregates the application services of the orders context.
// Owners is the lookup the authorization middleware uses to resolve item
// ownership without loading whole documents.
type Services struct {
	Item   *ItemService
	Owners auth.OwnerLookup
}

// New constructs the orders services from shared application dependencies.
func New(a *app.Application) (*Services, error) {
	provider, err := descriptions.NewProvider()
	if err != nil {
		return nil, fmt.Errorf("init description provider: %w", err)
	}

	repo := postgres.NewItemRepository(a.Db, a.EventBus)
	item := NewItemService(ItemServiceDeps{
		Repo:         repo,
		Cache:        cache.NewItemCache(a.Redis),
		Companies:    companiesapi.NewClient(a.Cfg, a.Logger),
		Descriptions: provider,
		Costs: models.CostTable{
			Standard:                 a.Cfg.CostStandard,
			StandardNewIncorporation: a.Cfg.CostStandardNewIncorporation,
			SameDay:                  a.Cfg.CostSameDay,
			SameDayNewIncorporation:  a.Cfg.CostSameDayNewIncorporation,
		},
		BasePath: a.Cfg.BasePath,
		Logger:   a.Logger,
	})

	return &Services{Item: item, Owners: repo}, nil
}
