package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds a user's default delivery information and links their orders.
type UserProfile struct {
	ID                  int64     `json:"id" db:"id"`
	UserID              uuid.UUID `json:"user_id" db:"user_id"`
	DefaultPhoneNumber  string    `json:"default_phone_number" db:"default_phone_number"`
	DefaultAddressLine1 string    `json:"default_address_line1" db:"default_address_line1"`
	DefaultAddressLine2 string    `json:"default_address_line2" db:"default_address_line2"`
	DefaultTownOrCity   string    `json:"default_town_or_city" db:"default_town_or_city"`
	DefaultCounty       string    `json:"default_county" db:"default_county"`
	DefaultPostcode     string    `json:"default_postcode" db:"default_postcode"`
	DefaultCountry      string    `json:"default_country" db:"default_country"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
