package server

import (
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/catalog"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/session"
)

// ListingsResponse is the derived view state for the listing page. NoData
// flags the explicit empty state used when the input collection was missing
// or malformed.
type ListingsResponse struct {
	session.View
	Bounds catalog.Bounds `json:"bounds"`
	NoData bool           `json:"noData,omitempty"`
}

type SelectResponse struct {
	Selected   []string `json:"selected"`
	CanCompare bool     `json:"canCompare"`
}

type FacetsResponse struct {
	Types     []string       `json:"types"`
	Locations []string       `json:"locations"`
	Amenities []string       `json:"amenities"`
	Bounds    catalog.Bounds `json:"bounds"`
}

type errorResponse struct {
	Error string `json:"error"`
}
