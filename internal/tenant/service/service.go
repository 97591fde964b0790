package service

import (
	"context"
	"log/slog"
	"time"

	"barbershop/internal/platform/config"
	"barbershop/internal/platform/logger"
	"barbershop/internal/tenant/metrics"
	"barbershop/internal/tenant/models"
	id "barbershop/pkg/domain"
	dErrors "barbershop/pkg/domain-errors"
	"barbershop/pkg/platform/validation"
)

// Registration is a freshly created tenant and its first account. Storing
// them is up to the caller.
type Registration struct {
	Tenant  *models.Tenant  `json:"tenant"`
	Account *models.Account `json:"account"`
}

// Service checks sign-up forms and turns valid ones into a trial tenant with
// its owner account.
type Service struct {
	cfg     config.App
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service bound to an already resolved configuration.
func New(cfg config.App, opts ...Option) *Service {
	s := &Service{cfg: cfg, logger: logger.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check validates every field of req without modifying it and returns live
// feedback, including formatted previews of rejected values.
func (s *Service) Check(req models.RegistrationRequest) models.Report {
	report := models.Report{
		Fields: []models.FieldResult{
			{Field: models.FieldOwnerName, Valid: validation.IsValidName(req.OwnerName)},
			{Field: models.FieldEmail, Valid: validation.IsValidEmail(req.Email)},
			{Field: models.FieldPhone, Valid: validation.IsValidPhone(req.Phone), Formatted: validation.FormatPhone(req.Phone)},
			{Field: models.FieldPassword, Valid: validation.IsValidPassword(req.Password)},
			{Field: models.FieldShopName, Valid: validation.IsValidName(req.ShopName)},
			{Field: models.FieldTaxID, Valid: validation.IsValidTaxID(req.TaxID), Formatted: validation.FormatTaxID(req.TaxID)},
		},
		PasswordStrength: validation.PasswordStrengthOf(req.Password),
	}

	if s.metrics != nil {
		for _, f := range report.Fields {
			s.metrics.ObserveField(f.Field, f.Valid)
		}
		s.metrics.ObservePasswordStrength(report.PasswordStrength.String())
	}
	return report
}

// Register validates req and creates the tenant in trial together with its
// owner. When the email matches the configured super-admin marker the
// account is created as super admin instead, with no tenant attached.
func (s *Service) Register(ctx context.Context, req models.RegistrationRequest) (*Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		s.logger.InfoContext(ctx, "registration rejected", "error", err)
		s.observeRegistration("invalid")
		return nil, err
	}

	now := s.now()

	if s.cfg.IsSuperAdmin(req.Email) {
		account, err := models.NewAccount(id.NewUserID(), id.TenantID{}, id.RoleSuperAdmin, req.OwnerName, req.Email, req.Phone, now)
		if err != nil {
			s.observeRegistration("error")
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create super admin account")
		}
		s.logger.WarnContext(ctx, "super admin account registered", "user_id", account.ID.String())
		s.observeRegistration("created")
		return &Registration{Account: account}, nil
	}

	tenant, err := models.NewTenant(id.NewTenantID(), req.ShopName, req.TaxID, s.cfg.TrialPeriod(), now)
	if err != nil {
		s.observeRegistration("invalid")
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid tenant")
		}
		return nil, err
	}

	owner, err := models.NewAccount(id.NewUserID(), tenant.ID, id.RoleTenantOwner, req.OwnerName, req.Email, req.Phone, now)
	if err != nil {
		s.observeRegistration("invalid")
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid owner account")
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "tenant registered",
		"tenant_id", tenant.ID.String(),
		"trial_ends_at", tenant.TrialEndsAt,
		"plan_price", s.cfg.PlanPrice(),
	)
	s.observeRegistration("created")
	if s.metrics != nil {
		s.metrics.IncrementTenantCreated()
	}

	return &Registration{Tenant: tenant, Account: owner}, nil
}

func (s *Service) observeRegistration(result string) {
	if s.metrics != nil {
		s.metrics.ObserveRegistration(result)
	}
}
