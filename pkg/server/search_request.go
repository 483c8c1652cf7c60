package server

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

// SearchRequest is the wire form of the filter criteria. The querystring
// carries the whole filter state on every request, absent params fall back
// to the unrestricted defaults. The search term is the exception: when the
// q key is missing entirely the session keeps its debounced value.
type SearchRequest struct {
	Query     *string  `schema:"-"`
	Sort      string   `schema:"sort"`
	Types     []string `schema:"type"`
	Locations []string `schema:"loc"`
	Amenities []string `schema:"amenity"`

	PriceRange *types.Range `schema:"-"`
	AreaRange  *types.Range `schema:"-"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func queryFromRequestQuery(query url.Values, result *SearchRequest) error {
	if err := decoder.Decode(result, query); err != nil {
		return err
	}
	return decodeFiltersFromRequest(query, result)
}

func decodeFiltersFromRequest(query url.Values, result *SearchRequest) error {
	// an explicitly empty q clears the term, a missing key keeps it
	if vals, ok := query["q"]; ok && len(vals) > 0 {
		result.Query = &vals[0]
	}
	if v := query.Get("price"); v != "" {
		var lo, hi float64
		if _, err := fmt.Sscanf(v, "%f-%f", &lo, &hi); err == nil {
			result.PriceRange = &types.Range{Min: lo, Max: hi}
		}
	}
	if v := query.Get("area"); v != "" {
		var lo, hi float64
		if _, err := fmt.Sscanf(v, "%f-%f", &lo, &hi); err == nil {
			result.AreaRange = &types.Range{Min: lo, Max: hi}
		}
	}
	return nil
}

// Apply merges the request into the criteria, starting from the defaults
// for every dimension the request restates and keeping the previous query
// when the request does not mention one. Unknown types and sort keys are
// dropped rather than erroring.
func (sr *SearchRequest) Apply(defaults types.Criteria, previous types.Criteria) types.Criteria {
	crit := defaults
	if sr.Query != nil {
		crit.Query = *sr.Query
	} else {
		crit.Query = previous.Query
	}
	for _, t := range sr.Types {
		pt := types.PropertyType(t)
		if pt.IsValid() {
			crit.Types = append(crit.Types, pt)
		}
	}
	crit.Locations = sr.Locations
	crit.Amenities = sr.Amenities
	if key := types.SortKey(sr.Sort); key.IsValid() {
		crit.Sort = key
	}
	if sr.PriceRange != nil {
		crit.PriceRange = *sr.PriceRange
	}
	if sr.AreaRange != nil {
		crit.AreaRange = *sr.AreaRange
	}
	return crit
}
