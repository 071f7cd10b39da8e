package model

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"bookstore-web/internal/shared/forms"
)

// BookForm is the add/edit book form as submitted. Fields stay strings so
// invalid input can be shown back to the user unchanged.
type BookForm struct {
	ISBN        string `form:"isbn" json:"isbn"`
	Title       string `form:"title" json:"title"`
	SortTitle   string `form:"sort_title" json:"sort_title"`
	Author      string `form:"author" json:"author"`
	Year        string `form:"year" json:"year"`
	Pages       string `form:"pages" json:"pages"`
	Price       string `form:"price" json:"price"`
	Rating      string `form:"rating" json:"rating"`
	RatingCount string `form:"rating_count" json:"rating_count"`
	Plot        string `form:"plot" json:"plot"`
	Description string `form:"description" json:"description"`
	ImageURL    string `form:"image_url" json:"image_url"`
}

func (f BookForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ISBN, validation.Required, validation.RuneLength(1, 13)),
		validation.Field(&f.Title, validation.Required, validation.RuneLength(1, 256)),
		validation.Field(&f.SortTitle, validation.Required, validation.RuneLength(1, 256)),
		validation.Field(&f.Author, is.Digit),
		validation.Field(&f.Year, validation.Required, is.Digit, validation.RuneLength(1, 9)),
		validation.Field(&f.Pages, validation.Required, is.Digit, validation.RuneLength(1, 9)),
		validation.Field(&f.Price, validation.Required, validation.Match(forms.Decimal).Error("must be a number with at most 4 digits before and 2 after the decimal point")),
		validation.Field(&f.Rating, validation.Match(forms.Decimal).Error("must be a number with at most 4 digits before and 2 after the decimal point")),
		validation.Field(&f.RatingCount, validation.Required, is.Digit, validation.RuneLength(1, 9)),
		validation.Field(&f.Plot, validation.Required),
		validation.Field(&f.Description, validation.Required),
		validation.Field(&f.ImageURL, is.URL, validation.RuneLength(0, 1024)),
	)
}

// Normalize trims surrounding whitespace from every field.
func (f BookForm) Normalize() BookForm {
	return BookForm{
		ISBN:        forms.Trim(f.ISBN),
		Title:       forms.Trim(f.Title),
		SortTitle:   forms.Trim(f.SortTitle),
		Author:      forms.Trim(f.Author),
		Year:        forms.Trim(f.Year),
		Pages:       forms.Trim(f.Pages),
		Price:       forms.Trim(f.Price),
		Rating:      forms.Trim(f.Rating),
		RatingCount: forms.Trim(f.RatingCount),
		Plot:        forms.Trim(f.Plot),
		Description: forms.Trim(f.Description),
		ImageURL:    forms.Trim(f.ImageURL),
	}
}

// AuthorID returns the selected author, nil for none.
func (f BookForm) AuthorID() *int64 {
	if f.Author == "" {
		return nil
	}
	id, err := strconv.ParseInt(f.Author, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// ApplyTo copies a validated form onto b.
func (f BookForm) ApplyTo(b *Book) {
	b.ISBN = f.ISBN
	b.Title = f.Title
	b.SortTitle = f.SortTitle
	b.AuthorID = f.AuthorID()
	b.Year, _ = strconv.Atoi(f.Year)
	b.Pages, _ = strconv.Atoi(f.Pages)
	b.Price, _ = decimal.NewFromString(f.Price)
	b.Rating = decimal.NullDecimal{}
	if f.Rating != "" {
		if r, err := decimal.NewFromString(f.Rating); err == nil {
			b.Rating = decimal.NewNullDecimal(r)
		}
	}
	b.RatingCount, _ = strconv.Atoi(f.RatingCount)
	b.Plot = f.Plot
	b.Description = f.Description
	b.ImageURL = f.ImageURL
}

// NewBookForm prefills the form from an existing book.
func NewBookForm(b *Book) BookForm {
	f := BookForm{
		ISBN:        b.ISBN,
		Title:       b.Title,
		SortTitle:   b.SortTitle,
		Year:        strconv.Itoa(b.Year),
		Pages:       strconv.Itoa(b.Pages),
		Price:       b.Price.StringFixed(2),
		RatingCount: strconv.Itoa(b.RatingCount),
		Plot:        b.Plot,
		Description: b.Description,
		ImageURL:    b.ImageURL,
	}
	if b.AuthorID != nil {
		f.Author = strconv.FormatInt(*b.AuthorID, 10)
	}
	if b.Rating.Valid {
		f.Rating = b.Rating.Decimal.StringFixed(2)
	}
	return f
}
