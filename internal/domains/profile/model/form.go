package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"bookstore-web/internal/shared/forms"
)

// UserProfileForm edits the default delivery information. Every field is optional.
type UserProfileForm struct {
	DefaultPhoneNumber  string `form:"default_phone_number" json:"default_phone_number"`
	DefaultPostcode     string `form:"default_postcode" json:"default_postcode"`
	DefaultTownOrCity   string `form:"default_town_or_city" json:"default_town_or_city"`
	DefaultAddressLine1 string `form:"default_address_line1" json:"default_address_line1"`
	DefaultAddressLine2 string `form:"default_address_line2" json:"default_address_line2"`
	DefaultCounty       string `form:"default_county" json:"default_county"`
	DefaultCountry      string `form:"default_country" json:"default_country"`
}

func (f UserProfileForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.DefaultPhoneNumber, validation.RuneLength(0, 20)),
		validation.Field(&f.DefaultPostcode, validation.RuneLength(0, 20)),
		validation.Field(&f.DefaultTownOrCity, validation.RuneLength(0, 40)),
		validation.Field(&f.DefaultAddressLine1, validation.RuneLength(0, 80)),
		validation.Field(&f.DefaultAddressLine2, validation.RuneLength(0, 80)),
		validation.Field(&f.DefaultCounty, validation.RuneLength(0, 80)),
		validation.Field(&f.DefaultCountry, is.CountryCode2),
	)
}

func (f UserProfileForm) Normalize() UserProfileForm {
	return UserProfileForm{
		DefaultPhoneNumber:  forms.Trim(f.DefaultPhoneNumber),
		DefaultPostcode:     forms.Trim(f.DefaultPostcode),
		DefaultTownOrCity:   forms.Trim(f.DefaultTownOrCity),
		DefaultAddressLine1: forms.Trim(f.DefaultAddressLine1),
		DefaultAddressLine2: forms.Trim(f.DefaultAddressLine2),
		DefaultCounty:       forms.Trim(f.DefaultCounty),
		DefaultCountry:      strings.ToUpper(forms.Trim(f.DefaultCountry)),
	}
}

func (f UserProfileForm) ApplyTo(p *UserProfile) {
	p.DefaultPhoneNumber = f.DefaultPhoneNumber
	p.DefaultPostcode = f.DefaultPostcode
	p.DefaultTownOrCity = f.DefaultTownOrCity
	p.DefaultAddressLine1 = f.DefaultAddressLine1
	p.DefaultAddressLine2 = f.DefaultAddressLine2
	p.DefaultCounty = f.DefaultCounty
	p.DefaultCountry = f.DefaultCountry
}

func NewUserProfileForm(p *UserProfile) UserProfileForm {
	return UserProfileForm{
		DefaultPhoneNumber:  p.DefaultPhoneNumber,
		DefaultPostcode:     p.DefaultPostcode,
		DefaultTownOrCity:   p.DefaultTownOrCity,
		DefaultAddressLine1: p.DefaultAddressLine1,
		DefaultAddressLine2: p.DefaultAddressLine2,
		DefaultCounty:       p.DefaultCounty,
		DefaultCountry:      p.DefaultCountry,
	}
}
