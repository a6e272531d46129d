package config_test

import (
	"strings"
	"testing"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/config"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasePath != "/orderable/certified-copies" {
		t.Errorf("base path: got %q", cfg.BasePath)
	}
	if cfg.HealthCheckPath != "/healthcheck" {
		t.Errorf("healthcheck path: got %q", cfg.HealthCheckPath)
	}
	if cfg.CostStandard != 15 || cfg.CostStandardNewIncorporation != 30 ||
		cfg.CostSameDay != 50 || cfg.CostSameDayNewIncorporation != 100 {
		t.Errorf("cost table defaults: %d/%d/%d/%d",
			cfg.CostStandard, cfg.CostStandardNewIncorporation, cfg.CostSameDay, cfg.CostSameDayNewIncorporation)
	}
	if cfg.Environment != config.EnvDevelopment {
		t.Errorf("environment: got %q", cfg.Environment)
	}
}

func TestLoad_envOverrides(t *testing.T) {
	t.Setenv("COST_STANDARD", "20")
	t.Setenv("BASE_PATH", "/orderable/other")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CostStandard != 20 {
		t.Errorf("cost standard: got %d", cfg.CostStandard)
	}
	if cfg.BasePath != "/orderable/other" {
		t.Errorf("base path: got %q", cfg.BasePath)
	}
}

func TestValidateForProduction_nonProductionNoOp(t *testing.T) {
	cfg := &config.Config{Environment: config.EnvDevelopment}
	if err := config.ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil for development, got %v", err)
	}
}

func TestValidateForProduction_failures(t *testing.T) {
	cfg := &config.Config{
		Environment:                  config.EnvProduction,
		APIKey:                       "",
		CostStandard:                 0,
		CostStandardNewIncorporation: 30,
		CostSameDay:                  50,
		CostSameDayNewIncorporation:  100,
		LogLevel:                     "debug",
	}
	err := config.ValidateForProduction(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"CHS_API_KEY", "COST_STANDARD", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %s: %v", want, err)
		}
	}
}

func TestValidateForProduction_valid(t *testing.T) {
	cfg := &config.Config{
		Environment:                  config.EnvProduction,
		APIKey:                       "secret",
		CostStandard:                 15,
		CostStandardNewIncorporation: 30,
		CostSameDay:                  50,
		CostSameDayNewIncorporation:  100,
		LogLevel:                     "info",
	}
	if err := config.ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
