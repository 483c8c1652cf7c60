package catalog

import (
	"sort"
	"sync"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

// Bounds holds the min/max spans observed over the FULL collection. They are
// never recomputed from a filtered subset.
type Bounds struct {
	Price types.Range `json:"price"`
	Area  types.Range `json:"area"`
}

// Catalog is the in-memory listing store. The collection is replaced as a
// whole, every replacement bumps the generation so downstream session state
// can detect it and reset.
type Catalog struct {
	mu         sync.RWMutex
	items      []types.Listing
	byId       map[string]int
	bounds     Bounds
	locations  []string
	amenities  []string
	generation uint64
	valid      bool
}

func New() *Catalog {
	return &Catalog{byId: map[string]int{}}
}

// Replace swaps the root collection and recomputes the derived vocabularies
// and bounds from the full set.
func (c *Catalog) Replace(items []types.Listing) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.byId = make(map[string]int, len(items))
	for i := range items {
		c.byId[items[i].Id] = i
	}
	c.bounds = boundsOf(items)
	c.locations, c.amenities = vocabulariesOf(items)
	c.generation++
	c.valid = true
}

// MarkInvalid puts the catalog into the explicit "no data" state used when
// the input collection was missing or malformed.
func (c *Catalog) MarkInvalid() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.byId = map[string]int{}
	c.bounds = Bounds{}
	c.locations = nil
	c.amenities = nil
	c.generation++
	c.valid = false
}

func (c *Catalog) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valid
}

func (c *Catalog) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Catalog) Get(id string) (types.Listing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx, ok := c.byId[id]
	if !ok {
		return types.Listing{}, false
	}
	return c.items[idx], true
}

// GetMany returns the listings for the given ids, keeping the id order and
// skipping unknown ids.
func (c *Catalog) GetMany(ids []string) []types.Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]types.Listing, 0, len(ids))
	for _, id := range ids {
		if idx, ok := c.byId[id]; ok {
			out = append(out, c.items[idx])
		}
	}
	return out
}

func (c *Catalog) All() []types.Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]types.Listing, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Bounds() Bounds {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bounds
}

func (c *Catalog) Locations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locations
}

func (c *Catalog) Amenities() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.amenities
}

// DefaultCriteria returns the unrestricted criteria, with both ranges at
// the full span of the current collection.
func (c *Catalog) DefaultCriteria() types.Criteria {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return types.Criteria{
		PriceRange: c.bounds.Price,
		AreaRange:  c.bounds.Area,
		Sort:       types.SortNewest,
	}
}

// Apply runs the filter pipeline against the current collection.
func (c *Catalog) Apply(crit types.Criteria) []types.Listing {
	c.mu.RLock()
	items := c.items
	c.mu.RUnlock()
	return Apply(items, crit)
}

func boundsOf(items []types.Listing) Bounds {
	if len(items) == 0 {
		return Bounds{}
	}
	b := Bounds{
		Price: types.Range{Min: items[0].TotalPrice(), Max: items[0].TotalPrice()},
		Area:  types.Range{Min: items[0].TotalSqft, Max: items[0].TotalSqft},
	}
	for i := 1; i < len(items); i++ {
		price := items[i].TotalPrice()
		if price < b.Price.Min {
			b.Price.Min = price
		}
		if price > b.Price.Max {
			b.Price.Max = price
		}
		area := items[i].TotalSqft
		if area < b.Area.Min {
			b.Area.Min = area
		}
		if area > b.Area.Max {
			b.Area.Max = area
		}
	}
	return b
}

func vocabulariesOf(items []types.Listing) (locations []string, amenities []string) {
	locSet := map[string]struct{}{}
	amSet := map[string]struct{}{}
	for i := range items {
		locSet[items[i].Location()] = struct{}{}
		for _, a := range items[i].Amenities {
			amSet[a] = struct{}{}
		}
	}
	for loc := range locSet {
		locations = append(locations, loc)
	}
	for a := range amSet {
		amenities = append(amenities, a)
	}
	sort.Strings(locations)
	sort.Strings(amenities)
	return locations, amenities
}
