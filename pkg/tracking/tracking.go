package tracking

import (
	"net/http"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

// Tracking receives behavioural events. Implementations must not block the
// request path, all handlers fire these from goroutines.
type Tracking interface {
	TrackSession(sessionId string, r *http.Request)
	TrackSearch(sessionId string, criteria types.Criteria, results int, r *http.Request)
	TrackSelect(sessionId string, listingId string, selected bool, selectionSize int)
	TrackCompare(sessionId string, listingIds []string)
	Close() error
}
