package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"bookstore-web/internal/shared/forms"
)

// OrderForm is the checkout delivery form.
type OrderForm struct {
	FullName     string `form:"full_name" json:"full_name"`
	Email        string `form:"email" json:"email"`
	PhoneNumber  string `form:"phone_number" json:"phone_number"`
	Country      string `form:"country" json:"country"`
	Postcode     string `form:"postcode" json:"postcode"`
	TownOrCity   string `form:"town_or_city" json:"town_or_city"`
	AddressLine1 string `form:"address_line1" json:"address_line1"`
	AddressLine2 string `form:"address_line2" json:"address_line2"`
	County       string `form:"county" json:"county"`
	// SaveInfo is a checkbox; any non-empty value means checked.
	SaveInfo string `form:"save_info" json:"save_info"`
}

func (f OrderForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FullName, validation.Required, validation.RuneLength(1, 50)),
		validation.Field(&f.Email, validation.Required, validation.RuneLength(1, 254), is.EmailFormat),
		validation.Field(&f.PhoneNumber, validation.Required, validation.RuneLength(1, 20)),
		validation.Field(&f.Country, validation.Required, is.CountryCode2),
		validation.Field(&f.Postcode, validation.RuneLength(0, 20)),
		validation.Field(&f.TownOrCity, validation.Required, validation.RuneLength(1, 40)),
		validation.Field(&f.AddressLine1, validation.Required, validation.RuneLength(1, 80)),
		validation.Field(&f.AddressLine2, validation.RuneLength(0, 80)),
		validation.Field(&f.County, validation.RuneLength(0, 80)),
	)
}

func (f OrderForm) Normalize() OrderForm {
	return OrderForm{
		FullName:     forms.Trim(f.FullName),
		Email:        forms.Trim(f.Email),
		PhoneNumber:  forms.Trim(f.PhoneNumber),
		Country:      strings.ToUpper(forms.Trim(f.Country)),
		Postcode:     forms.Trim(f.Postcode),
		TownOrCity:   forms.Trim(f.TownOrCity),
		AddressLine1: forms.Trim(f.AddressLine1),
		AddressLine2: forms.Trim(f.AddressLine2),
		County:       forms.Trim(f.County),
		SaveInfo:     forms.Trim(f.SaveInfo),
	}
}

func (f OrderForm) ShouldSaveInfo() bool {
	return f.SaveInfo != ""
}

func (f OrderForm) ApplyTo(o *Order) {
	o.FullName = f.FullName
	o.Email = f.Email
	o.PhoneNumber = f.PhoneNumber
	o.Country = f.Country
	o.Postcode = f.Postcode
	o.TownOrCity = f.TownOrCity
	o.AddressLine1 = f.AddressLine1
	o.AddressLine2 = f.AddressLine2
	o.County = f.County
}
