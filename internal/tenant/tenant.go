package tenant

import (
	"log/slog"

	"barbershop/internal/platform/config"
	"barbershop/internal/tenant/metrics"
	"barbershop/internal/tenant/service"
)

// Service exposes sign-up checks and tenant registration.
type Service = service.Service

// Registration is the tenant and owner account produced by a sign-up.
type Registration = service.Registration

// NewService constructs the tenant service with its ambient dependencies.
// A nil metrics value disables instrumentation.
func NewService(cfg config.App, logger *slog.Logger, m *metrics.Metrics) *Service {
	opts := []service.Option{service.WithLogger(logger)}
	if m != nil {
		opts = append(opts, service.WithMetrics(m))
	}
	return service.New(cfg, opts...)
}
