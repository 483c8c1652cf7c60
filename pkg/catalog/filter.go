package catalog

import (
	"sort"
	"strings"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

// Apply runs the filter pipeline over the given listings and returns the
// matching subset in the order requested by the criteria. Every stage only
// narrows the sequence, the stable sort runs last.
func Apply(listings []types.Listing, crit types.Criteria) []types.Listing {
	term := strings.ToLower(strings.TrimSpace(crit.Query))
	out := make([]types.Listing, 0, len(listings))
	for i := range listings {
		l := &listings[i]
		if !l.MatchesTerm(term) {
			continue
		}
		if !crit.HasType(l.Type) {
			continue
		}
		if !crit.PriceRange.Contains(l.TotalPrice()) {
			continue
		}
		if !crit.AreaRange.Contains(l.TotalSqft) {
			continue
		}
		if !crit.HasLocation(l.Location()) {
			continue
		}
		if !hasAllAmenities(l, crit.Amenities) {
			continue
		}
		out = append(out, *l)
	}
	sortListings(out, crit.Sort)
	return out
}

func hasAllAmenities(l *types.Listing, required []string) bool {
	for _, a := range required {
		if !l.HasAmenity(a) {
			return false
		}
	}
	return true
}

func sortListings(listings []types.Listing, key types.SortKey) {
	var less func(a, b *types.Listing) bool
	switch key {
	case types.SortOldest:
		less = func(a, b *types.Listing) bool { return a.DateListed.Before(b.DateListed) }
	case types.SortPriceAsc:
		less = func(a, b *types.Listing) bool { return a.TotalPrice() < b.TotalPrice() }
	case types.SortPriceDesc:
		less = func(a, b *types.Listing) bool { return a.TotalPrice() > b.TotalPrice() }
	case types.SortAreaDesc:
		less = func(a, b *types.Listing) bool { return a.TotalSqft > b.TotalSqft }
	case types.SortAreaAsc:
		less = func(a, b *types.Listing) bool { return a.TotalSqft < b.TotalSqft }
	case types.SortTitle:
		less = func(a, b *types.Listing) bool { return a.Title < b.Title }
	default:
		// newest first
		less = func(a, b *types.Listing) bool { return a.DateListed.After(b.DateListed) }
	}
	// stable so ties keep their input order across runs
	sort.SliceStable(listings, func(i, j int) bool {
		return less(&listings[i], &listings[j])
	})
}
