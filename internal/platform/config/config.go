package config

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"barbershop/pkg/email"
)

// Environment keys read at startup.
const (
	EnvAppName         = "APP_NAME"
	EnvAppURL          = "APP_URL"
	EnvTrialDays       = "TRIAL_DAYS"
	EnvPlanPrice       = "PLAN_PRICE"
	EnvSuperAdminEmail = "SUPER_ADMIN_EMAIL"
)

// Fallbacks used when a key is missing or malformed.
const (
	DefaultAppName         = "Barbearia SaaS"
	DefaultAppURL          = "http://localhost:5173"
	DefaultTrialDays       = 14
	DefaultPlanPrice       = 30.0
	DefaultSuperAdminEmail = "pfariasoficial@gmail.com"
)

// MaxTrialDays caps TRIAL_DAYS; larger values are treated as malformed.
const MaxTrialDays = 3650

// Source looks up a single configuration key.
type Source func(key string) (string, bool)

// MapSource serves keys from a fixed map.
func MapSource(m map[string]string) Source {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// App is the process-wide application configuration. It is built once by
// Resolve and never mutated; pass it to the components that need it.
type App struct {
	name            string
	url             string
	trialDays       int
	planPrice       float64
	superAdminEmail string
}

// FromEnv resolves App from the process environment so main stays lean.
func FromEnv() App {
	return Resolve(os.LookupEnv)
}

// Resolve builds App from env, falling back to the defaults for every key
// that is absent or malformed. It never fails.
func Resolve(env Source) App {
	if env == nil {
		env = MapSource(nil)
	}
	return App{
		name:            stringOr(env, EnvAppName, DefaultAppName),
		url:             stringOr(env, EnvAppURL, DefaultAppURL),
		trialDays:       boundedIntOr(env, EnvTrialDays, DefaultTrialDays, MaxTrialDays),
		planPrice:       positiveFloatOr(env, EnvPlanPrice, DefaultPlanPrice),
		superAdminEmail: stringOr(env, EnvSuperAdminEmail, DefaultSuperAdminEmail),
	}
}

func (c App) Name() string            { return c.name }
func (c App) URL() string             { return c.url }
func (c App) TrialDays() int          { return c.trialDays }
func (c App) PlanPrice() float64      { return c.planPrice }
func (c App) SuperAdminEmail() string { return c.superAdminEmail }

// TrialPeriod is the trial length as a duration.
func (c App) TrialPeriod() time.Duration {
	return time.Duration(c.trialDays) * 24 * time.Hour
}

// IsSuperAdmin reports whether address is the configured super-admin marker.
// Comparison ignores case and surrounding whitespace.
func (c App) IsSuperAdmin(address string) bool {
	return email.Equal(address, c.superAdminEmail)
}

func stringOr(env Source, key, fallback string) string {
	v, ok := env(key)
	if !ok {
		return fallback
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

// boundedIntOr accepts integers in 1..limit.
func boundedIntOr(env Source, key string, fallback, limit int) int {
	v, ok := env(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 || n > limit {
		return fallback
	}
	return n
}

func positiveFloatOr(env Source, key string, fallback float64) float64 {
	v, ok := env(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fallback
	}
	return f
}
