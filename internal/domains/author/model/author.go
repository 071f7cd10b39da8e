package model

import (
	"time"
)

// Author writes books. Default ordering is by SortName.
type Author struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	FriendlyName string    `json:"friendly_name" db:"friendly_name"`
	SortName     string    `json:"sort_name" db:"sort_name"`
	Bio          string    `json:"bio" db:"bio"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// DisplayName prefers the friendly name.
func (a *Author) DisplayName() string {
	if a.FriendlyName != "" {
		return a.FriendlyName
	}
	return a.Name
}
