package models

import (
	"strings"

	dErrors "barbershop/pkg/domain-errors"
	"barbershop/pkg/email"
	"barbershop/pkg/platform/validation"
)

// Field names used in validation reports and error messages.
const (
	FieldOwnerName = "owner_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldPassword  = "password"
	FieldShopName  = "shop_name"
	FieldTaxID     = "tax_id"
)

// RegistrationRequest is the sign-up form for a new barbershop and its owner.
type RegistrationRequest struct {
	OwnerName string `json:"owner_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	ShopName  string `json:"shop_name"`
	TaxID     string `json:"tax_id"`
}

// Normalize trims free text, lower-cases the email and puts valid phone and
// tax numbers in their display form. The password is left untouched.
func (r *RegistrationRequest) Normalize() {
	if r == nil {
		return
	}
	r.OwnerName = validation.TrimName(r.OwnerName)
	r.ShopName = validation.TrimName(r.ShopName)
	r.Email = email.Normalize(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	if validation.IsValidPhone(r.Phone) {
		r.Phone = validation.FormatPhone(r.Phone)
	}
	r.TaxID = strings.TrimSpace(r.TaxID)
	if validation.IsValidTaxID(r.TaxID) {
		r.TaxID = validation.FormatTaxID(r.TaxID)
	}
}

// InvalidFields lists the fields that fail validation, in form order.
func (r *RegistrationRequest) InvalidFields() []string {
	if r == nil {
		return []string{FieldOwnerName, FieldEmail, FieldPhone, FieldPassword, FieldShopName, FieldTaxID}
	}
	var invalid []string
	if !validation.IsValidName(r.OwnerName) {
		invalid = append(invalid, FieldOwnerName)
	}
	if !validation.IsValidEmail(r.Email) {
		invalid = append(invalid, FieldEmail)
	}
	if !validation.IsValidPhone(r.Phone) {
		invalid = append(invalid, FieldPhone)
	}
	if !validation.IsValidPassword(r.Password) {
		invalid = append(invalid, FieldPassword)
	}
	if !validation.IsValidName(r.ShopName) {
		invalid = append(invalid, FieldShopName)
	}
	if !validation.IsValidTaxID(r.TaxID) {
		invalid = append(invalid, FieldTaxID)
	}
	return invalid
}

// Validate returns a CodeValidation error naming every invalid field.
func (r *RegistrationRequest) Validate() error {
	invalid := r.InvalidFields()
	if len(invalid) == 0 {
		return nil
	}
	return dErrors.New(dErrors.CodeValidation, "invalid fields: "+strings.Join(invalid, ", "))
}
