package domain

import dErrors "barbershop/pkg/domain-errors"

// TenantStatus is the billing lifecycle state of a tenant.
//
// Lifecycle:
//
//	trial     -> active | suspended (trial expiry) | cancelled
//	active    -> suspended | cancelled
//	suspended -> active | cancelled
//	cancelled is terminal
type TenantStatus string

const (
	TenantStatusTrial     TenantStatus = "trial"
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusCancelled TenantStatus = "cancelled"
)

var tenantTransitions = map[TenantStatus][]TenantStatus{
	TenantStatusTrial:     {TenantStatusActive, TenantStatusSuspended, TenantStatusCancelled},
	TenantStatusActive:    {TenantStatusSuspended, TenantStatusCancelled},
	TenantStatusSuspended: {TenantStatusActive, TenantStatusCancelled},
	TenantStatusCancelled: nil,
}

// ParseTenantStatus constructs a TenantStatus from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseTenantStatus(s string) (TenantStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "tenant status cannot be empty")
	}
	st := TenantStatus(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid tenant status")
	}
	return st, nil
}

func (s TenantStatus) IsValid() bool {
	_, ok := tenantTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions are allowed.
func (s TenantStatus) IsTerminal() bool {
	return s == TenantStatusCancelled
}

// HasAccess reports whether the tenant may use the product.
func (s TenantStatus) HasAccess() bool {
	return s == TenantStatusTrial || s == TenantStatusActive
}

// CanTransitionTo reports whether next is a legal successor of s.
// Self-transitions and transitions from unknown states are rejected.
func (s TenantStatus) CanTransitionTo(next TenantStatus) bool {
	for _, allowed := range tenantTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s TenantStatus) String() string {
	return string(s)
}

// TenantStatuses returns every lifecycle state in creation order.
func TenantStatuses() []TenantStatus {
	return []TenantStatus{TenantStatusTrial, TenantStatusActive, TenantStatusSuspended, TenantStatusCancelled}
}
