package types

import "slices"

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortAreaDesc  SortKey = "area_desc"
	SortAreaAsc   SortKey = "area_asc"
	SortTitle     SortKey = "title"
)

func (s SortKey) IsValid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriceAsc, SortPriceDesc, SortAreaDesc, SortAreaAsc, SortTitle:
		return true
	}
	return false
}

// Range is an inclusive [Min, Max] span.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Criteria is the filter state applied to the full listing collection.
// Empty term and empty sets mean no restriction, the ranges always apply
// and are initialized from the bounds of the full collection.
type Criteria struct {
	Query      string         `json:"query"`
	Types      []PropertyType `json:"types"`
	PriceRange Range          `json:"priceRange"`
	AreaRange  Range          `json:"areaRange"`
	Locations  []string       `json:"locations"`
	Amenities  []string       `json:"amenities"`
	Sort       SortKey        `json:"sort"`
}

func (c *Criteria) HasType(t PropertyType) bool {
	return len(c.Types) == 0 || slices.Contains(c.Types, t)
}

func (c *Criteria) HasLocation(loc string) bool {
	return len(c.Locations) == 0 || slices.Contains(c.Locations, loc)
}
