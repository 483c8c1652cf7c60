package types

import (
	"fmt"
	"strings"
	"time"
)

type PropertyType string

const (
	TypeOffice     PropertyType = "office"
	TypeRetail     PropertyType = "retail"
	TypeIndustrial PropertyType = "industrial"
	TypeWarehouse  PropertyType = "warehouse"
)

func (p PropertyType) IsValid() bool {
	switch p {
	case TypeOffice, TypeRetail, TypeIndustrial, TypeWarehouse:
		return true
	}
	return false
}

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type Listing struct {
	Id           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         PropertyType `json:"type"`
	Address      Address      `json:"address"`
	PricePerSqft float64      `json:"price_per_sqft"`
	TotalSqft    float64      `json:"total_sqft"`
	YearBuilt    *int         `json:"year_built,omitempty"`
	DateListed   time.Time    `json:"date_listed"`
	Amenities    []string     `json:"amenities"`
	Images       []string     `json:"images,omitempty"`
}

// TotalPrice is always derived, never stored.
func (l *Listing) TotalPrice() float64 {
	return l.PricePerSqft * l.TotalSqft
}

// Age returns years since construction, false when the year built is unknown.
func (l *Listing) Age(now time.Time) (int, bool) {
	if l.YearBuilt == nil {
		return 0, false
	}
	return now.Year() - *l.YearBuilt, true
}

// Location is the "City, State" key used by the location filter.
func (l *Listing) Location() string {
	return fmt.Sprintf("%s, %s", l.Address.City, l.Address.State)
}

func (l *Listing) HasAmenity(name string) bool {
	for _, a := range l.Amenities {
		if a == name {
			return true
		}
	}
	return false
}

// MatchesTerm reports if the lower-cased term is a substring of the title,
// description, city, state or any amenity. The caller lower-cases the term.
func (l *Listing) MatchesTerm(term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Description), term) ||
		strings.Contains(strings.ToLower(l.Address.City), term) ||
		strings.Contains(strings.ToLower(l.Address.State), term) {
		return true
	}
	for _, a := range l.Amenities {
		if strings.Contains(strings.ToLower(a), term) {
			return true
		}
	}
	return false
}
