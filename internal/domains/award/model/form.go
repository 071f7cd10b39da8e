package model

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"bookstore-web/internal/shared/forms"
)

// AwardForm is the add/edit award form as submitted.
type AwardForm struct {
	Name         string `form:"name" json:"name"`
	FriendlyName string `form:"friendly_name" json:"friendly_name"`
	SortName     string `form:"sort_name" json:"sort_name"`
	Description  string `form:"description" json:"description"`
}

func (f AwardForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&f.FriendlyName, validation.RuneLength(0, 150)),
		validation.Field(&f.SortName, validation.RuneLength(0, 150)),
	)
}

func (f AwardForm) Normalize() AwardForm {
	return AwardForm{
		Name:         forms.Trim(f.Name),
		FriendlyName: forms.Trim(f.FriendlyName),
		SortName:     forms.Trim(f.SortName),
		Description:  forms.Trim(f.Description),
	}
}

func (f AwardForm) ApplyTo(a *Award) {
	a.Name = f.Name
	a.FriendlyName = f.FriendlyName
	a.SortName = f.SortName
	a.Description = f.Description
}

func NewAwardForm(a *Award) AwardForm {
	return AwardForm{
		Name:         a.Name,
		FriendlyName: a.FriendlyName,
		SortName:     a.SortName,
		Description:  a.Description,
	}
}

// AwardDetailsForm links a book to an award. Award and book are select values (ids), both optional.
type AwardDetailsForm struct {
	Award     string `form:"award" json:"award"`
	Book      string `form:"book" json:"book"`
	AwardYear string `form:"award_year" json:"award_year"`
	Category  string `form:"category" json:"category"`
}

func (f AwardDetailsForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Award, is.Digit),
		validation.Field(&f.Book, is.Digit),
		validation.Field(&f.AwardYear, validation.Required, is.Digit, validation.RuneLength(1, 9)),
		validation.Field(&f.Category, validation.Required, validation.RuneLength(1, 256)),
	)
}

func (f AwardDetailsForm) Normalize() AwardDetailsForm {
	return AwardDetailsForm{
		Award:     forms.Trim(f.Award),
		Book:      forms.Trim(f.Book),
		AwardYear: forms.Trim(f.AwardYear),
		Category:  forms.Trim(f.Category),
	}
}

func parseOptionalID(s string) *int64 {
	if s == "" {
		return nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

func (f AwardDetailsForm) AwardID() *int64 { return parseOptionalID(f.Award) }
func (f AwardDetailsForm) BookID() *int64  { return parseOptionalID(f.Book) }

func (f AwardDetailsForm) ApplyTo(d *AwardDetail) {
	d.AwardID = f.AwardID()
	d.BookID = f.BookID()
	d.AwardYear, _ = strconv.Atoi(f.AwardYear)
	d.Category = f.Category
}

func NewAwardDetailsForm(d *AwardDetail) AwardDetailsForm {
	f := AwardDetailsForm{
		AwardYear: strconv.Itoa(d.AwardYear),
		Category:  d.Category,
	}
	if d.AwardID != nil {
		f.Award = strconv.FormatInt(*d.AwardID, 10)
	}
	if d.BookID != nil {
		f.Book = strconv.FormatInt(*d.BookID, 10)
	}
	return f
}
