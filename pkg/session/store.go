package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/catalog"
)

const DefaultIdleTimeout = 30 * time.Minute

// Store keeps the live sessions in memory, nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	catalog  *catalog.Catalog

	LoadDelay   time.Duration
	QueryDelay  time.Duration
	IdleTimeout time.Duration
}

func NewStore(cat *catalog.Catalog) *Store {
	return &Store{
		sessions:    map[string]*Session{},
		catalog:     cat,
		LoadDelay:   DefaultLoadDelay,
		QueryDelay:  DefaultQueryDelay,
		IdleTimeout: DefaultIdleTimeout,
	}
}

// Get returns the session for the given id, creating one when the id is
// empty or unknown. The returned session id is authoritative for the cookie.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if id != "" {
		if s, ok := st.sessions[id]; ok {
			return s
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	s := newSession(id, st.catalog, st.LoadDelay, st.QueryDelay)
	st.sessions[id] = s
	return s
}

func (st *Store) Has(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.sessions[id]
	return ok
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep evicts sessions idle longer than the timeout and returns how many
// were removed.
func (st *Store) Sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.idleSince(now) > st.IdleTimeout {
			s.Close()
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given interval until the returned stop
// function is called.
func (st *Store) StartSweeper(interval time.Duration) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				st.Sweep(now)
			}
		}
	}()
	return func() { close(done) }
}
