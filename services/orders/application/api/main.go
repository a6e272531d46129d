// Package api registers the orders HTTP surface on the shared router.
package api

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/app"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/auth"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/application/handlers"
	appsvcs "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/application/services"
)

// ItemRoutes registers the certified copy item endpoints under the configured
// base path. The full authorization pipeline runs on every route: header
// authentication, fee-waiver role recording, then the role/ownership gate.
func ItemRoutes(r chi.Router, a *app.Application) error {
	svcs, err := appsvcs.New(a)
	if err != nil {
		return fmt.Errorf("init orders services: %w", err)
	}

	r.Route(a.Cfg.BasePath, func(r chi.Router) {
		r.Use(auth.Authentication(a.Logger))
		r.Use(auth.CheckAuthorisedRoles())
		r.Use(auth.AuthoriseItemAccess(svcs.Owners, a.Logger))

		r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Patch("/{id}", handlers.NewPatchItemHandler(svcs).Execute)
	})
	return nil
}
