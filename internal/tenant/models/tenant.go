package models

import (
	"time"
	"unicode/utf8"

	id "barbershop/pkg/domain"
	dErrors "barbershop/pkg/domain-errors"
	"barbershop/pkg/platform/validation"
)

const maxTenantNameLength = 128

// Tenant is the aggregate root for a barbershop account.
//
// Invariants:
//   - Name is trimmed, at least 3 and at most 128 characters
//   - TaxID is a valid CNPJ stored in its formatted form
//   - Status moves only along domain.TenantStatus.CanTransitionTo
//   - CreatedAt and TrialEndsAt are immutable after construction
//
// A tenant starts in trial. Trial expiry moves it to suspended (not
// cancelled) so the shop can still pay and return to active.
type Tenant struct {
	ID          id.TenantID     `json:"id"`
	Name        string          `json:"name"`
	TaxID       string          `json:"tax_id"`
	Status      id.TenantStatus `json:"status"`
	TrialEndsAt time.Time       `json:"trial_ends_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewTenant creates a tenant in trial that ends trialPeriod after now.
func NewTenant(tenantID id.TenantID, name, taxID string, trialPeriod time.Duration, now time.Time) (*Tenant, error) {
	if tenantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tenant ID cannot be nil")
	}
	name = validation.TrimName(name)
	if !validation.IsValidName(name) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tenant name must be at least 3 characters")
	}
	if utf8.RuneCountInString(name) > maxTenantNameLength {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tenant name must be 128 characters or less")
	}
	if !validation.IsValidTaxID(taxID) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tenant tax ID must have 14 digits")
	}
	if trialPeriod <= 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "trial period must be positive")
	}
	return &Tenant{
		ID:          tenantID,
		Name:        name,
		TaxID:       validation.FormatTaxID(taxID),
		Status:      id.TenantStatusTrial,
		TrialEndsAt: now.Add(trialPeriod),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// HasAccess reports whether the shop may use the product right now.
func (t *Tenant) HasAccess() bool {
	return t.Status.HasAccess()
}

// TrialExpired reports whether the trial window has closed at now.
func (t *Tenant) TrialExpired(now time.Time) bool {
	return !now.Before(t.TrialEndsAt)
}

// TrialDaysLeft returns the whole days left in the trial, rounded up, or 0
// once the trial has ended or the tenant is no longer in trial.
func (t *Tenant) TrialDaysLeft(now time.Time) int {
	if t.Status != id.TenantStatusTrial || t.TrialExpired(now) {
		return 0
	}
	left := t.TrialEndsAt.Sub(now)
	days := int(left / (24 * time.Hour))
	if left%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Activate confirms payment: trial or suspended becomes active.
func (t *Tenant) Activate(now time.Time) error {
	return t.transition(id.TenantStatusActive, now)
}

// Reactivate is Activate restricted to suspended tenants.
func (t *Tenant) Reactivate(now time.Time) error {
	if t.Status != id.TenantStatusSuspended {
		return dErrors.New(dErrors.CodeInvariantViolation, "only suspended tenants can be reactivated")
	}
	return t.transition(id.TenantStatusActive, now)
}

// Suspend moves an active tenant to suspended after a payment failure or
// policy violation. Trial tenants are suspended through ExpireTrial only.
func (t *Tenant) Suspend(now time.Time) error {
	if t.Status == id.TenantStatusTrial {
		return dErrors.New(dErrors.CodeInvariantViolation, "trial tenants are suspended only on trial expiry")
	}
	return t.transition(id.TenantStatusSuspended, now)
}

// ExpireTrial suspends a trial tenant whose trial window has closed.
func (t *Tenant) ExpireTrial(now time.Time) error {
	if t.Status != id.TenantStatusTrial {
		return dErrors.New(dErrors.CodeInvariantViolation, "tenant is not in trial")
	}
	if !t.TrialExpired(now) {
		return dErrors.New(dErrors.CodeInvariantViolation, "trial has not ended yet")
	}
	return t.transition(id.TenantStatusSuspended, now)
}

// Cancel ends the tenant. Cancelled is terminal.
func (t *Tenant) Cancel(now time.Time) error {
	return t.transition(id.TenantStatusCancelled, now)
}

func (t *Tenant) transition(next id.TenantStatus, now time.Time) error {
	if !t.Status.CanTransitionTo(next) {
		return dErrors.New(dErrors.CodeInvariantViolation,
			"tenant cannot move from "+t.Status.String()+" to "+next.String())
	}
	t.Status = next
	t.UpdatedAt = now
	return nil
}
