package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/common"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/compare"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

var (
	noSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cre_searches_total",
		Help: "The total number of processed listing searches",
	})
	noSuggests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cre_suggest_total",
		Help: "The total number of processed suggestions",
	})
	noCompares = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cre_compares_total",
		Help: "The total number of comparison requests",
	})
)

func (ws *WebServer) respondView(w http.ResponseWriter, enc *json.Encoder, sessionId string) error {
	s := ws.Sessions.Get(sessionId)
	view := s.View()
	common.DefaultHeaders(w, false, "0")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(ListingsResponse{
		View:   view,
		Bounds: ws.Catalog.Bounds(),
		NoData: !ws.Catalog.Valid(),
	})
}

// Listings applies the filter state from the querystring and returns the
// revealed window of the filtered, sorted sequence.
func (ws *WebServer) listings(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	go noSearches.Inc()
	sr := &SearchRequest{}
	if err := queryFromRequestQuery(r.URL.Query(), sr); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return enc.Encode(errorResponse{Error: err.Error()})
	}

	if ws.Tracking != nil && !ws.Sessions.Has(sessionId) {
		go ws.Tracking.TrackSession(sessionId, r)
	}
	s := ws.Sessions.Get(sessionId)
	view := s.Update(func(c *types.Criteria) {
		*c = sr.Apply(ws.Catalog.DefaultCriteria(), *c)
	})

	if ws.Tracking != nil {
		go ws.Tracking.TrackSearch(sessionId, view.Criteria, view.TotalHits, r)
	}

	common.DefaultHeaders(w, false, "0")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(ListingsResponse{
		View:   view,
		Bounds: ws.Catalog.Bounds(),
		NoData: !ws.Catalog.Valid(),
	})
}

func (ws *WebServer) getListing(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	id := r.PathValue("id")
	listing, ok := ws.Catalog.Get(id)
	if !ok {
		common.DefaultHeaders(w, false, "0")
		w.WriteHeader(http.StatusNotFound)
		return enc.Encode(errorResponse{Error: fmt.Sprintf("listing %s not found", id)})
	}
	common.DefaultHeaders(w, true, "120")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(listing)
}

type queryInputRequest struct {
	Query string `json:"query"`
}

// QueryInput feeds one keystroke event into the debounced search input. The
// term is applied to the session criteria only after the quiet period, so a
// burst of events results in a single recomputation.
func (ws *WebServer) queryInput(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	var req queryInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return enc.Encode(errorResponse{Error: err.Error()})
	}
	s := ws.Sessions.Get(sessionId)
	s.SetQuery(req.Query)
	common.DefaultHeaders(w, false, "0")
	w.WriteHeader(http.StatusAccepted)
	return enc.Encode(map[string]bool{"scheduled": true})
}

type selectRequest struct {
	Id       string `json:"id"`
	Selected bool   `json:"selected"`
}

func (ws *WebServer) selectListing(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return enc.Encode(errorResponse{Error: "id is required"})
	}
	s := ws.Sessions.Get(sessionId)
	selected := s.Toggle(req.Id, req.Selected)

	if ws.Tracking != nil {
		go ws.Tracking.TrackSelect(sessionId, req.Id, req.Selected, len(selected))
	}

	common.DefaultHeaders(w, false, "0")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(SelectResponse{
		Selected:   selected,
		CanCompare: len(selected) >= compare.MinListings,
	})
}

func (ws *WebServer) compareSelected(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	go noCompares.Inc()
	s := ws.Sessions.Get(sessionId)
	ids := s.Selected()
	listings := ws.Catalog.GetMany(ids)

	annotations, err := compare.Compare(listings, time.Now())
	if err != nil {
		common.DefaultHeaders(w, false, "0")
		w.WriteHeader(http.StatusBadRequest)
		return enc.Encode(errorResponse{Error: err.Error()})
	}

	if ws.Tracking != nil {
		go ws.Tracking.TrackCompare(sessionId, ids)
	}

	common.DefaultHeaders(w, false, "0")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(annotations)
}

func (ws *WebServer) loadMore(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	s := ws.Sessions.Get(sessionId)
	s.LoadMore()
	return ws.respondView(w, enc, sessionId)
}

func (ws *WebServer) resetCriteria(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	s := ws.Sessions.Get(sessionId)
	defaults := ws.Catalog.DefaultCriteria()
	s.Update(func(c *types.Criteria) {
		*c = defaults
	})
	return ws.respondView(w, enc, sessionId)
}

// Facets returns the filter vocabulary derived from the full collection:
// types, locations, amenities and the full-span range bounds. The payload
// only changes when the catalog is replaced, so it is cached per generation.
func (ws *WebServer) Facets(w http.ResponseWriter, r *http.Request) {
	resp := FacetsResponse{}
	cacheKey := fmt.Sprintf("facets:%d", ws.Catalog.Generation())
	if ws.Cache == nil || ws.Cache.Get(cacheKey, &resp) != nil {
		resp = FacetsResponse{
			Types: []string{
				string(types.TypeOffice),
				string(types.TypeRetail),
				string(types.TypeIndustrial),
				string(types.TypeWarehouse),
			},
			Locations: ws.Catalog.Locations(),
			Amenities: ws.Catalog.Amenities(),
			Bounds:    ws.Catalog.Bounds(),
		}
		if ws.Cache != nil {
			_ = ws.Cache.Set(cacheKey, resp, 5*time.Minute)
		}
	}
	common.DefaultHeaders(w, true, "120")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func (ws *WebServer) Suggest(w http.ResponseWriter, r *http.Request) {
	go noSuggests.Inc()
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	suggestions := ws.Suggester.Suggest(query, ws.SuggestLimit)
	common.DefaultHeaders(w, true, "120")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(suggestions)
}
