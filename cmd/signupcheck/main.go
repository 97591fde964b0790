package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"barbershop/cmd/signupcheck/internal/commands"
	"barbershop/internal/platform/config"
	"barbershop/internal/platform/logger"
	"barbershop/internal/tenant"
	"barbershop/internal/tenant/metrics"
)

var (
	version = "dev"
	cli     struct {
		Check    commands.CheckCmd  `cmd:"" help:"Check a sign-up form and optionally register it"`
		Config   commands.ConfigCmd `cmd:"" help:"Print the resolved application configuration"`
		LogLevel string             `help:"Log level (debug, info, warn, error)." default:"info"`
		Metrics  bool               `help:"Print validation counters after the command runs."`
		Version  kong.VersionFlag
	}
)

// main resolves configuration once, wires the tenant service and hands off to
// the selected command.
func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	cfg := config.FromEnv()
	log := logger.New(cli.LogLevel, os.Stderr)
	registry := prometheus.NewRegistry()

	globals := &commands.Globals{
		Config:  cfg,
		Logger:  log,
		Service: tenant.NewService(cfg, log, metrics.New(registry)),
		Out:     os.Stdout,
	}

	err := cmd.Run(globals)
	if cli.Metrics {
		if werr := commands.WriteMetrics(os.Stdout, registry); werr != nil {
			log.Error("failed to write metrics", "error", werr)
		}
	}
	cmd.FatalIfErrorf(err)
}
