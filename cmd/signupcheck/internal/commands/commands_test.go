package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbershop/internal/platform/config"
	"barbershop/internal/platform/logger"
	"barbershop/internal/tenant"
	"barbershop/internal/tenant/metrics"
)

func newGlobals(t *testing.T, env map[string]string) (*Globals, *bytes.Buffer, *prometheus.Registry) {
	t.Helper()
	cfg := config.Resolve(config.MapSource(env))
	reg := prometheus.NewRegistry()
	out := &bytes.Buffer{}
	log := logger.Discard()
	return &Globals{
		Config:  cfg,
		Logger:  log,
		Service: tenant.NewService(cfg, log, metrics.New(reg)),
		Out:     out,
	}, out, reg
}

func validCheck() *CheckCmd {
	return &CheckCmd{
		OwnerName: "Carlos Lima",
		Email:     "carlos@navalha.com.br",
		Phone:     "(11) 98765-4321",
		Password:  "Corte2026",
		ShopName:  "Navalha de Ouro",
		TaxID:     "12.345.678/0001-99",
	}
}

func TestCheckCmd_Valid(t *testing.T) {
	globals, out, _ := newGlobals(t, nil)

	require.NoError(t, validCheck().Run(context.Background(), globals))

	var report struct {
		PasswordStrength string `json:"password_strength"`
		Fields           []struct {
			Field string `json:"field"`
			Valid bool   `json:"valid"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "strong", report.PasswordStrength)
	assert.Len(t, report.Fields, 6)
	for _, f := range report.Fields {
		assert.True(t, f.Valid, f.Field)
	}
}

func TestCheckCmd_Invalid(t *testing.T) {
	globals, out, _ := newGlobals(t, nil)
	cmd := validCheck()
	cmd.Phone = "123"
	cmd.Register = true

	err := cmd.Run(context.Background(), globals)
	require.ErrorIs(t, err, ErrInvalidForm)
	assert.NotContains(t, out.String(), "tenant")
}

func TestCheckCmd_Register(t *testing.T) {
	globals, out, reg := newGlobals(t, map[string]string{config.EnvTrialDays: "21"})
	cmd := validCheck()
	cmd.Register = true

	require.NoError(t, cmd.Run(context.Background(), globals))
	assert.Contains(t, out.String(), `"status": "trial"`)
	assert.Contains(t, out.String(), `"role": "owner"`)

	var metricsOut bytes.Buffer
	require.NoError(t, WriteMetrics(&metricsOut, reg))
	assert.Contains(t, metricsOut.String(), "barbershop_tenants_created_total 1")
	assert.Contains(t, metricsOut.String(), `barbershop_registrations_total{result="created"} 1`)
}

func TestConfigCmd(t *testing.T) {
	globals, out, _ := newGlobals(t, map[string]string{config.EnvPlanPrice: "oops"})

	require.NoError(t, (&ConfigCmd{}).Run(context.Background(), globals))

	var view configView
	require.NoError(t, json.Unmarshal(out.Bytes(), &view))
	assert.Equal(t, 14, view.TrialDays)
	assert.Equal(t, 30.0, view.PlanPrice)
	assert.Equal(t, config.DefaultAppName, view.Name)
}

func TestWriteMetrics_Exposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveField("phone", false)
	m.ObserveField("email", true)

	var buf bytes.Buffer
	require.NoError(t, WriteMetrics(&buf, reg))

	text := buf.String()
	assert.Contains(t, text, "# TYPE barbershop_field_checks_total counter")
	email := strings.Index(text, `barbershop_field_checks_total{field="email",outcome="accepted"} 1`)
	phone := strings.Index(text, `barbershop_field_checks_total{field="phone",outcome="rejected"} 1`)
	require.NotEqual(t, -1, email)
	require.NotEqual(t, -1, phone)
	assert.Less(t, email, phone)
}

func TestCheckCmd_LogsRegistration(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		globals, _, _ := newGlobals(t, nil)
		var logs bytes.Buffer
		globals.Logger = logger.New("info", &logs)
		cmd := validCheck()
		cmd.Register = true

		require.NoError(t, cmd.Run(context.Background(), globals))
		assert.Contains(t, logs.String(), `"msg":"tenant registered"`)
		assert.Contains(t, logs.String(), `"role":"owner"`)
	})

	t.Run("failure", func(t *testing.T) {
		globals, _, _ := newGlobals(t, nil)
		var logs bytes.Buffer
		globals.Logger = logger.New("info", &logs)
		cmd := validCheck()
		cmd.Register = true

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := cmd.Run(ctx, globals)
		require.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, logs.String(), `"level":"ERROR"`)
		assert.Contains(t, logs.String(), `"msg":"registration failed"`)
		assert.Contains(t, logs.String(), "context canceled")
	})
}
