package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for tenant sign-up: field validation
// outcomes, password grades and registrations.
type Metrics struct {
	FieldChecks         *prometheus.CounterVec
	PasswordStrength    *prometheus.CounterVec
	RegistrationsTotal  *prometheus.CounterVec
	TenantsCreatedTotal prometheus.Counter
}

// New creates the collectors and registers them with reg. A nil reg means the
// default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		FieldChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "barbershop_field_checks_total",
			Help: "Field validations by field and outcome",
		}, []string{"field", "outcome"}),
		PasswordStrength: f.NewCounterVec(prometheus.CounterOpts{
			Name: "barbershop_password_strength_total",
			Help: "Password strength grades seen at sign-up",
		}, []string{"strength"}),
		RegistrationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "barbershop_registrations_total",
			Help: "Registration attempts by result",
		}, []string{"result"}),
		TenantsCreatedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "barbershop_tenants_created_total",
			Help: "Tenants created in trial",
		}),
	}
}

// ObserveField records one field validation.
func (m *Metrics) ObserveField(field string, accepted bool) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	m.FieldChecks.WithLabelValues(field, outcome).Inc()
}

// ObservePasswordStrength records a strength grade.
func (m *Metrics) ObservePasswordStrength(strength string) {
	m.PasswordStrength.WithLabelValues(strength).Inc()
}

// ObserveRegistration records a registration attempt; result is "created",
// "invalid" or "error".
func (m *Metrics) ObserveRegistration(result string) {
	m.RegistrationsTotal.WithLabelValues(result).Inc()
}

// IncrementTenantCreated records a tenant created in trial.
func (m *Metrics) IncrementTenantCreated() {
	m.TenantsCreatedTotal.Inc()
}
