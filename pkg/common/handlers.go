package common

import (
	"encoding/json"
	"log"
	"net/http"
)

// JsonHandler wraps a handler that writes a JSON body, taking care of
// OPTIONS preflight and the session cookie.
func JsonHandler(fn func(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "OPTIONS" {
			RespondToOptions(w, r)
			return
		}
		sessionId := HandleSessionCookie(w, r)

		err := fn(w, r, sessionId, json.NewEncoder(w))
		if err != nil {
			log.Printf("Error handling request: %v", err)
		}
	}
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
	w.WriteHeader(http.StatusAccepted)
}

// DefaultHeaders sets the JSON content type and cache headers. Session
// scoped responses must not be cached by intermediaries.
func DefaultHeaders(w http.ResponseWriter, cacheable bool, maxAge string) {
	w.Header().Set("Content-Type", "application/json")
	if cacheable {
		w.Header().Set("Cache-Control", "public, stale-while-revalidate="+maxAge)
	} else {
		w.Header().Set("Cache-Control", "private, no-store")
	}
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Age", "0")
}
