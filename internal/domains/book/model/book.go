package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is a catalog entry. Default ordering is by SortTitle, case-insensitive.
type Book struct {
	ID        int64  `json:"id" db:"id"`
	ISBN      string `json:"isbn" db:"isbn"`
	Title     string `json:"title" db:"title"`
	SortTitle string `json:"sort_title" db:"sort_title"`

	// AuthorID is nil when the book has no author, for instance after the author was deleted.
	AuthorID       *int64 `json:"author_id" db:"author_id"`
	AuthorName     string `json:"author_name" db:"author_name"`
	AuthorSortName string `json:"-" db:"author_sort_name"`

	Year        int                 `json:"year" db:"year"`
	Pages       int                 `json:"pages" db:"pages"`
	Price       decimal.Decimal     `json:"price" db:"price"`
	Rating      decimal.NullDecimal `json:"rating" db:"rating"`
	RatingCount int                 `json:"rating_count" db:"rating_count"`
	Plot        string              `json:"plot" db:"plot"`
	Description string              `json:"description" db:"description"`
	ImageURL    string              `json:"image_url" db:"image_url"`
	Image       string              `json:"image" db:"image"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Picture returns the uploaded image when there is one, otherwise the external image URL.
func (b *Book) Picture() string {
	if b.Image != "" {
		return b.Image
	}
	return b.ImageURL
}

// HasAuthor reports whether the book is linked to an author.
func (b *Book) HasAuthor() bool {
	return b.AuthorID != nil
}

// BookFilter narrows and orders a book listing.
type BookFilter struct {
	// Search is matched case-insensitively against title, description and plot.
	Search   string
	Sort     SortKey
	Desc     bool
	AuthorID *int64
}
