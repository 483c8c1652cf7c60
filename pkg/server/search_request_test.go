package server

import (
	"net/url"
	"testing"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

func defaults() types.Criteria {
	return types.Criteria{
		PriceRange: types.Range{Min: 0, Max: 100000},
		AreaRange:  types.Range{Min: 0, Max: 9000},
		Sort:       types.SortNewest,
	}
}

func TestParseQueryValues(t *testing.T) {
	query := url.Values{
		"q":       []string{"office"},
		"sort":    []string{"price_asc"},
		"type":    []string{"office", "retail"},
		"loc":     []string{"Austin, TX"},
		"amenity": []string{"Parking", "Elevator"},
		"price":   []string{"1000-2000"},
		"area":    []string{"100-500"},
	}
	sr := &SearchRequest{}
	if err := queryFromRequestQuery(query, sr); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	crit := sr.Apply(defaults(), types.Criteria{})

	if crit.Query != "office" {
		t.Errorf("Expected query office, got %q", crit.Query)
	}
	if crit.Sort != types.SortPriceAsc {
		t.Errorf("Expected sort price_asc, got %v", crit.Sort)
	}
	if len(crit.Types) != 2 || crit.Types[0] != types.TypeOffice || crit.Types[1] != types.TypeRetail {
		t.Errorf("Expected [office retail], got %v", crit.Types)
	}
	if len(crit.Locations) != 1 || crit.Locations[0] != "Austin, TX" {
		t.Errorf("Expected [Austin, TX], got %v", crit.Locations)
	}
	if len(crit.Amenities) != 2 {
		t.Errorf("Expected 2 amenities, got %v", crit.Amenities)
	}
	if crit.PriceRange.Min != 1000 || crit.PriceRange.Max != 2000 {
		t.Errorf("Expected price range [1000, 2000], got %+v", crit.PriceRange)
	}
	if crit.AreaRange.Min != 100 || crit.AreaRange.Max != 500 {
		t.Errorf("Expected area range [100, 500], got %+v", crit.AreaRange)
	}
}

func TestParseQueryValues_AbsentFallsBackToDefaults(t *testing.T) {
	sr := &SearchRequest{}
	if err := queryFromRequestQuery(url.Values{}, sr); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	prev := types.Criteria{Query: "kept from debounce"}
	crit := sr.Apply(defaults(), prev)

	if crit.Query != "kept from debounce" {
		t.Errorf("Missing q key must keep the session query, got %q", crit.Query)
	}
	if crit.PriceRange != defaults().PriceRange || crit.AreaRange != defaults().AreaRange {
		t.Errorf("Expected full-span ranges, got %+v / %+v", crit.PriceRange, crit.AreaRange)
	}
	if len(crit.Types) != 0 || len(crit.Locations) != 0 || len(crit.Amenities) != 0 {
		t.Errorf("Expected unrestricted sets, got %+v", crit)
	}
	if crit.Sort != types.SortNewest {
		t.Errorf("Expected default sort, got %v", crit.Sort)
	}
}

func TestParseQueryValues_DropsInvalidValues(t *testing.T) {
	query := url.Values{
		"type":  []string{"castle"},
		"sort":  []string{"by-vibes"},
		"price": []string{"nonsense"},
	}
	sr := &SearchRequest{}
	if err := queryFromRequestQuery(query, sr); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	crit := sr.Apply(defaults(), types.Criteria{})
	if len(crit.Types) != 0 {
		t.Errorf("Unknown type must be dropped, got %v", crit.Types)
	}
	if crit.Sort != types.SortNewest {
		t.Errorf("Unknown sort must fall back to default, got %v", crit.Sort)
	}
	if crit.PriceRange != defaults().PriceRange {
		t.Errorf("Bad range param must keep the default span, got %+v", crit.PriceRange)
	}
}

func TestParseQueryValues_EmptyQResetsQuery(t *testing.T) {
	sr := &SearchRequest{}
	if err := queryFromRequestQuery(url.Values{"q": []string{""}}, sr); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	crit := sr.Apply(defaults(), types.Criteria{Query: "old"})
	if crit.Query != "" {
		t.Errorf("Explicit empty q must clear the query, got %q", crit.Query)
	}
}
