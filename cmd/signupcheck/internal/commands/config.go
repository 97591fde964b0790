package commands

import "context"

type ConfigCmd struct{}

type configView struct {
	Name            string  `json:"name"`
	URL             string  `json:"url"`
	TrialDays       int     `json:"trial_days"`
	PlanPrice       float64 `json:"plan_price"`
	SuperAdminEmail string  `json:"super_admin_email"`
}

func (c *ConfigCmd) Run(_ context.Context, globals *Globals) error {
	cfg := globals.Config
	return writeJSON(globals.Out, configView{
		Name:            cfg.Name(),
		URL:             cfg.URL(),
		TrialDays:       cfg.TrialDays(),
		PlanPrice:       cfg.PlanPrice(),
		SuperAdminEmail: cfg.SuperAdminEmail(),
	})
}
