package compare

import (
	"errors"
	"math"
	"time"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

const (
	MinListings = 2
	MaxListings = 4
)

var ErrBadCount = errors.New("comparison requires between 2 and 4 listings")

// Annotation is presentational metadata for one compared listing. The input
// order is preserved, nothing is filtered out.
type Annotation struct {
	Id         string  `json:"id"`
	TotalPrice float64 `json:"totalPrice"`
	TotalArea  float64 `json:"totalArea"`
	Age        *int    `json:"age,omitempty"`
	BestPrice  bool    `json:"bestPrice"`
	BestArea   bool    `json:"bestArea"`
	BestAge    bool    `json:"bestAge"`
}

// Compare marks the best listing per metric: lowest total price, largest
// area, lowest age. Exact ties are all marked best. Listings without a year
// built never win the age metric; if none has one, nobody does.
func Compare(listings []types.Listing, now time.Time) ([]Annotation, error) {
	if len(listings) < MinListings || len(listings) > MaxListings {
		return nil, ErrBadCount
	}

	minPrice := math.Inf(1)
	maxArea := math.Inf(-1)
	minAge := math.Inf(1)
	for i := range listings {
		l := &listings[i]
		if p := l.TotalPrice(); p < minPrice {
			minPrice = p
		}
		if l.TotalSqft > maxArea {
			maxArea = l.TotalSqft
		}
		if age, ok := l.Age(now); ok && float64(age) < minAge {
			minAge = float64(age)
		}
	}

	out := make([]Annotation, len(listings))
	for i := range listings {
		l := &listings[i]
		a := Annotation{
			Id:         l.Id,
			TotalPrice: l.TotalPrice(),
			TotalArea:  l.TotalSqft,
			BestPrice:  l.TotalPrice() == minPrice,
			BestArea:   l.TotalSqft == maxArea,
		}
		if age, ok := l.Age(now); ok {
			a.Age = &age
			a.BestAge = float64(age) == minAge
		}
		out[i] = a
	}
	return out, nil
}
