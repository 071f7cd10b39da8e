package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookstore-web/internal/shared/forms"
)

// AuthorForm is the add/edit author form as submitted.
type AuthorForm struct {
	Name         string `form:"name" json:"name"`
	FriendlyName string `form:"friendly_name" json:"friendly_name"`
	SortName     string `form:"sort_name" json:"sort_name"`
	Bio          string `form:"bio" json:"bio"`
}

func (f AuthorForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&f.FriendlyName, validation.RuneLength(0, 150)),
		validation.Field(&f.SortName, validation.RuneLength(0, 150)),
	)
}

// Normalize trims surrounding whitespace from every field.
func (f AuthorForm) Normalize() AuthorForm {
	return AuthorForm{
		Name:         forms.Trim(f.Name),
		FriendlyName: forms.Trim(f.FriendlyName),
		SortName:     forms.Trim(f.SortName),
		Bio:          forms.Trim(f.Bio),
	}
}

// ApplyTo copies the form values onto a.
func (f AuthorForm) ApplyTo(a *Author) {
	a.Name = f.Name
	a.FriendlyName = f.FriendlyName
	a.SortName = f.SortName
	a.Bio = f.Bio
}

// NewAuthorForm prefills the form from an existing author.
func NewAuthorForm(a *Author) AuthorForm {
	return AuthorForm{
		Name:         a.Name,
		FriendlyName: a.FriendlyName,
		SortName:     a.SortName,
		Bio:          a.Bio,
	}
}
