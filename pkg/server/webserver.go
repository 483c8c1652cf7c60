package server

import (
	"net/http"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/catalog"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/common"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/session"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/suggest"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/tracking"
)

type WebServer struct {
	Catalog   *catalog.Catalog
	Sessions  *session.Store
	Suggester *suggest.Suggester

	// Optional services, may be nil
	Cache    *Cache
	Tracking tracking.Tracking

	SuggestLimit int
}

func NewWebServer(cat *catalog.Catalog, sessions *session.Store, suggester *suggest.Suggester) *WebServer {
	return &WebServer{
		Catalog:      cat,
		Sessions:     sessions,
		Suggester:    suggester,
		SuggestLimit: 10,
	}
}

// ClientHandler returns the public API surface consumed by the listing
// browser UI.
func (ws *WebServer) ClientHandler() http.Handler {
	srv := http.NewServeMux()

	srv.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv.HandleFunc("GET /listings", common.JsonHandler(ws.listings))
	srv.HandleFunc("GET /listings/{id}", common.JsonHandler(ws.getListing))
	srv.HandleFunc("POST /query", common.JsonHandler(ws.queryInput))
	srv.HandleFunc("POST /select", common.JsonHandler(ws.selectListing))
	srv.HandleFunc("GET /compare", common.JsonHandler(ws.compareSelected))
	srv.HandleFunc("POST /more", common.JsonHandler(ws.loadMore))
	srv.HandleFunc("POST /reset", common.JsonHandler(ws.resetCriteria))
	srv.HandleFunc("GET /facets", ws.Facets)
	srv.HandleFunc("GET /suggest", ws.Suggest)

	return srv
}
