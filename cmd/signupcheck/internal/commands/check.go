package commands

import (
	"context"
	"errors"
	"fmt"

	"barbershop/internal/tenant/models"
)

var ErrInvalidForm = errors.New("form has invalid fields")

type CheckCmd struct {
	OwnerName string `help:"Owner full name" name:"owner-name"`
	Email     string `help:"Owner email"`
	Phone     string `help:"Owner phone (Brazil, 10 or 11 digits)"`
	Password  string `help:"Account password"`
	ShopName  string `help:"Barbershop name" name:"shop-name"`
	TaxID     string `help:"Barbershop CNPJ" name:"tax-id"`
	Register  bool   `help:"Create the trial tenant and owner when the form is valid" default:"false"`
}

func (c *CheckCmd) request() models.RegistrationRequest {
	return models.RegistrationRequest{
		OwnerName: c.OwnerName,
		Email:     c.Email,
		Phone:     c.Phone,
		Password:  c.Password,
		ShopName:  c.ShopName,
		TaxID:     c.TaxID,
	}
}

func (c *CheckCmd) Run(ctx context.Context, globals *Globals) error {
	req := c.request()

	report := globals.Service.Check(req)
	if err := writeJSON(globals.Out, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if !report.Valid() {
		globals.Logger.Debug("sign-up form rejected", "register", c.Register)
		return ErrInvalidForm
	}
	if !c.Register {
		return nil
	}

	reg, err := globals.Service.Register(ctx, req)
	if err != nil {
		globals.Logger.Error("registration failed", "error", err)
		return fmt.Errorf("failed to register: %w", err)
	}
	globals.Logger.Info("tenant registered",
		"tenant_id", reg.Tenant.ID.String(),
		"role", reg.Account.Role().String(),
	)
	return writeJSON(globals.Out, reg)
}
