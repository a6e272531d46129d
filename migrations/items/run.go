package main

import (
	"embed"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/config"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, MigrationsFS); err != nil {
		panic(err)
	}
}
