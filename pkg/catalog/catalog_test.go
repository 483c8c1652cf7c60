package catalog

import (
	"testing"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

func TestCatalog_BoundsFromFullCollection(t *testing.T) {
	c := New()
	c.Replace(testListings())

	b := c.Bounds()
	// total prices: a=10000, b=25000, c=16000
	if b.Price.Min != 10000 || b.Price.Max != 25000 {
		t.Errorf("Expected price bounds [10000, 25000], got %+v", b.Price)
	}
	if b.Area.Min != 800 || b.Area.Max != 5000 {
		t.Errorf("Expected area bounds [800, 5000], got %+v", b.Area)
	}

	// bounds stay derived from the full set, not the filtered subset
	crit := c.DefaultCriteria()
	crit.Types = []types.PropertyType{types.TypeOffice}
	_ = c.Apply(crit)
	if got := c.Bounds(); got != b {
		t.Errorf("Bounds changed after filtering: %+v", got)
	}
}

func TestCatalog_DefaultCriteriaSpansEverything(t *testing.T) {
	c := New()
	c.Replace(testListings())
	got := c.Apply(c.DefaultCriteria())
	if len(got) != c.Len() {
		t.Errorf("Default criteria should match the whole collection, got %d of %d", len(got), c.Len())
	}
}

func TestCatalog_Vocabularies(t *testing.T) {
	c := New()
	c.Replace(testListings())

	locs := c.Locations()
	if len(locs) != 2 || locs[0] != "Austin, TX" || locs[1] != "Houston, TX" {
		t.Errorf("Expected sorted [Austin, TX; Houston, TX], got %v", locs)
	}
	ams := c.Amenities()
	if len(ams) != 3 {
		t.Errorf("Expected 3 distinct amenities, got %v", ams)
	}
}

func TestCatalog_ReplaceBumpsGeneration(t *testing.T) {
	c := New()
	c.Replace(testListings())
	gen := c.Generation()
	c.Replace(testListings()[:1])
	if c.Generation() == gen {
		t.Errorf("Expected generation bump on replace")
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 listing after replace, got %d", c.Len())
	}
}

func TestCatalog_InvalidState(t *testing.T) {
	c := New()
	c.Replace(testListings())
	c.MarkInvalid()
	if c.Valid() {
		t.Errorf("Expected invalid catalog")
	}
	if c.Len() != 0 {
		t.Errorf("Invalid catalog must be empty, got %d", c.Len())
	}
	if got := c.Apply(c.DefaultCriteria()); len(got) != 0 {
		t.Errorf("Invalid catalog must filter to nothing, got %d", len(got))
	}
}

func TestCatalog_GetMany_KeepsOrderSkipsUnknown(t *testing.T) {
	c := New()
	c.Replace(testListings())
	got := c.GetMany([]string{"c", "missing", "a"})
	if len(got) != 2 || got[0].Id != "c" || got[1].Id != "a" {
		t.Errorf("Expected [c a], got %v", got)
	}
}
