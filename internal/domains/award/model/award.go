package model

import (
	"sort"
	"time"
)

// Award is a literary prize. Default ordering is by SortName.
type Award struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	FriendlyName string    `json:"friendly_name" db:"friendly_name"`
	SortName     string    `json:"sort_name" db:"sort_name"`
	Description  string    `json:"description" db:"description"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// DisplayName prefers the friendly name.
func (a *Award) DisplayName() string {
	if a.FriendlyName != "" {
		return a.FriendlyName
	}
	return a.Name
}

// AwardDetail records that a book won (or was listed for) an award in a given year and category.
// Both links are optional and the row goes away when either side is deleted.
type AwardDetail struct {
	ID        int64  `json:"id" db:"id"`
	AwardID   *int64 `json:"award_id" db:"award_id"`
	AwardName string `json:"award_name" db:"award_name"`
	BookID    *int64 `json:"book_id" db:"book_id"`
	BookTitle string `json:"book_title" db:"book_title"`
	AwardYear int    `json:"award_year" db:"award_year"`
	Category  string `json:"category" db:"category"`
}

// AwardPage is the award detail view: details by year plus the distinct years.
type AwardPage struct {
	Award   *Award
	Details []AwardDetail
	Years   []int
}

// DistinctYears returns the sorted distinct award years of details.
func DistinctYears(details []AwardDetail) []int {
	seen := make(map[int]bool, len(details))
	years := make([]int, 0, len(details))
	for _, d := range details {
		if !seen[d.AwardYear] {
			seen[d.AwardYear] = true
			years = append(years, d.AwardYear)
		}
	}
	sort.Ints(years)
	return years
}
