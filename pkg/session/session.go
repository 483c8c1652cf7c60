package session

import (
	"reflect"
	"sync"
	"time"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/catalog"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

// PageSize is the initial reveal window and the load-more increment.
const PageSize = 8

// DefaultLoadDelay simulates fetch latency on load-more, no real I/O happens.
const DefaultLoadDelay = 500 * time.Millisecond

// Session holds the per-user UI state: filter criteria, comparison selection
// and the reveal window over the filtered sequence. Every mutation produces
// a consistent snapshot via View.
type Session struct {
	mu       sync.Mutex
	Id       string
	catalog  *catalog.Catalog
	criteria types.Criteria
	selected Selection
	debounce *Debouncer
	lastSeen time.Time

	revealCount int
	loading     bool
	// generation changes whenever the filtered sequence changes identity,
	// a pending load-more timer from an older generation must not apply
	generation uint64
	catalogGen uint64
	loadDelay  time.Duration
}

// View is the derived state consumed by the presentation layer.
type View struct {
	Items       []types.Listing `json:"items"`
	TotalHits   int             `json:"totalHits"`
	RevealCount int             `json:"revealCount"`
	HasMore     bool            `json:"hasMore"`
	IsLoading   bool            `json:"isLoading"`
	Criteria    types.Criteria  `json:"criteria"`
	Selected    []string        `json:"selected"`
	CanCompare  bool            `json:"canCompare"`
}

func newSession(id string, cat *catalog.Catalog, loadDelay, queryDelay time.Duration) *Session {
	s := &Session{
		Id:          id,
		catalog:     cat,
		criteria:    cat.DefaultCriteria(),
		selected:    Selection{},
		debounce:    NewDebouncer(queryDelay),
		lastSeen:    time.Now(),
		revealCount: PageSize,
		catalogGen:  cat.Generation(),
		loadDelay:   loadDelay,
	}
	return s
}

// syncCatalogLocked resets range filters to the new full span and the reveal
// window whenever the root collection was replaced. User-narrowed ranges are
// not preserved across reloads.
func (s *Session) syncCatalogLocked() {
	gen := s.catalog.Generation()
	if gen == s.catalogGen {
		return
	}
	s.catalogGen = gen
	bounds := s.catalog.Bounds()
	s.criteria.PriceRange = bounds.Price
	s.criteria.AreaRange = bounds.Area
	s.resetRevealLocked()
}

func (s *Session) resetRevealLocked() {
	s.generation++
	s.revealCount = PageSize
	s.loading = false
}

func (s *Session) viewLocked() View {
	filtered := s.catalog.Apply(s.criteria)
	count := min(s.revealCount, len(filtered))
	return View{
		Items:       filtered[:count],
		TotalHits:   len(filtered),
		RevealCount: count,
		HasMore:     s.revealCount < len(filtered),
		IsLoading:   s.loading,
		Criteria:    s.criteria,
		Selected:    append([]string{}, s.selected...),
		CanCompare:  s.selected.CanCompare(),
	}
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	s.syncCatalogLocked()
	return s.viewLocked()
}

// Update applies a criteria change. The reveal window only resets when the
// criteria actually changed, so re-applying identical criteria keeps it.
func (s *Session) Update(fn func(*types.Criteria)) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	s.syncCatalogLocked()
	next := s.criteria
	fn(&next)
	if !reflect.DeepEqual(next, s.criteria) {
		s.criteria = next
		s.resetRevealLocked()
	}
	return s.viewLocked()
}

func (s *Session) Criteria() types.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// SetQuery schedules the search term to be applied after the quiet period.
// Each keystroke event supersedes the pending one, only the final value
// reaches the filter pipeline.
func (s *Session) SetQuery(q string) {
	s.debounce.Schedule(func() {
		s.Update(func(c *types.Criteria) {
			c.Query = q
		})
	})
}

// Toggle flips the comparison selection for a listing id.
func (s *Session) Toggle(id string, selected bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	s.selected = s.selected.Toggle(id, selected)
	return append([]string{}, s.selected...)
}

func (s *Session) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.selected...)
}

// LoadMore grows the reveal window by one page after the simulated latency.
// It is a no-op while a load is pending or when everything is revealed.
func (s *Session) LoadMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	s.syncCatalogLocked()
	total := len(s.catalog.Apply(s.criteria))
	if s.loading || s.revealCount >= total {
		return false
	}
	s.loading = true
	gen := s.generation
	time.AfterFunc(s.loadDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation != gen {
			// the filtered sequence changed while the timer was pending
			return
		}
		s.revealCount += PageSize
		s.loading = false
	})
	return true
}

// Close stops the pending debounce task, used when the session is evicted.
func (s *Session) Close() {
	s.debounce.Cancel()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
