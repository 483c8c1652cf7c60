package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/catalog"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

func listingFixture(n int) []types.Listing {
	out := make([]types.Listing, n)
	for i := 0; i < n; i++ {
		pt := types.TypeOffice
		if i%4 == 0 {
			pt = types.TypeWarehouse
		}
		out[i] = types.Listing{
			Id:           fmt.Sprintf("l%02d", i),
			Title:        fmt.Sprintf("Listing %d", i),
			Type:         pt,
			Address:      types.Address{City: "Austin", State: "TX"},
			PricePerSqft: 10,
			TotalSqft:    float64(1000 + i),
			DateListed:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Amenities:    []string{},
		}
	}
	return out
}

func testStore(n int) (*Store, *catalog.Catalog) {
	cat := catalog.New()
	cat.Replace(listingFixture(n))
	st := NewStore(cat)
	st.LoadDelay = 5 * time.Millisecond
	st.QueryDelay = 10 * time.Millisecond
	return st, cat
}

func TestSession_InitialView(t *testing.T) {
	st, _ := testStore(20)
	v := st.Get("s1").View()
	if v.RevealCount != PageSize || len(v.Items) != PageSize {
		t.Errorf("Expected initial window of %d, got %d/%d", PageSize, v.RevealCount, len(v.Items))
	}
	if !v.HasMore {
		t.Errorf("Expected hasMore with 20 items")
	}
	if v.IsLoading {
		t.Errorf("Expected no pending load")
	}
}

func TestSession_LoadMoreGrowsAfterDelay(t *testing.T) {
	st, _ := testStore(20)
	s := st.Get("s1")
	if !s.LoadMore() {
		t.Fatalf("Expected first LoadMore to start")
	}
	if s.LoadMore() {
		t.Errorf("Expected LoadMore to be a no-op while loading")
	}
	if !s.View().IsLoading {
		t.Errorf("Expected loading flag while the timer is pending")
	}
	time.Sleep(50 * time.Millisecond)
	v := s.View()
	if v.RevealCount != 16 || v.IsLoading {
		t.Errorf("Expected window of 16 after delay, got %d (loading=%v)", v.RevealCount, v.IsLoading)
	}
}

func TestSession_LoadMoreNoopWhenEverythingRevealed(t *testing.T) {
	st, _ := testStore(5)
	s := st.Get("s1")
	if s.LoadMore() {
		t.Errorf("Expected no-op when nothing more to reveal")
	}
}

func TestSession_CriteriaChangeResetsWindow(t *testing.T) {
	st, _ := testStore(20)
	s := st.Get("s1")
	s.LoadMore()
	time.Sleep(50 * time.Millisecond)
	if v := s.View(); v.RevealCount != 16 {
		t.Fatalf("Expected window of 16, got %d", v.RevealCount)
	}

	// narrow to the 5 warehouses, window resets to one page
	v := s.Update(func(c *types.Criteria) {
		c.Types = []types.PropertyType{types.TypeWarehouse}
	})
	if v.TotalHits != 5 {
		t.Fatalf("Expected 5 filtered listings, got %d", v.TotalHits)
	}
	if v.RevealCount != 5 || len(v.Items) != 5 {
		t.Errorf("Expected visible count min(8,5)=5, got %d/%d", v.RevealCount, len(v.Items))
	}
	if v.HasMore {
		t.Errorf("Expected hasMore=false after reset")
	}
}

func TestSession_IdenticalCriteriaKeepsWindow(t *testing.T) {
	st, _ := testStore(20)
	s := st.Get("s1")
	s.LoadMore()
	time.Sleep(50 * time.Millisecond)

	crit := s.Criteria()
	v := s.Update(func(c *types.Criteria) { *c = crit })
	if v.RevealCount != 16 {
		t.Errorf("Re-applying identical criteria must keep the window, got %d", v.RevealCount)
	}
}

func TestSession_StaleLoadTimerIsNoop(t *testing.T) {
	st, _ := testStore(20)
	st.LoadDelay = 30 * time.Millisecond
	s := st.Get("s1")
	s.LoadMore()
	// the filtered sequence changes identity before the timer fires
	s.Update(func(c *types.Criteria) {
		c.Types = []types.PropertyType{types.TypeOffice}
	})
	time.Sleep(80 * time.Millisecond)
	if v := s.View(); v.RevealCount != PageSize {
		t.Errorf("Stale timer must not grow the reset window, got %d", v.RevealCount)
	}
}

func TestSession_DebouncedQueryAppliesLastValue(t *testing.T) {
	st, _ := testStore(20)
	s := st.Get("s1")
	s.SetQuery("li")
	s.SetQuery("list")
	s.SetQuery("listing 1")
	time.Sleep(60 * time.Millisecond)
	if got := s.Criteria().Query; got != "listing 1" {
		t.Errorf("Expected only the final value applied, got %q", got)
	}
}

func TestSession_CatalogReplaceResetsRangesAndWindow(t *testing.T) {
	st, cat := testStore(20)
	s := st.Get("s1")
	s.Update(func(c *types.Criteria) {
		c.PriceRange = types.Range{Min: 10000, Max: 10050}
	})
	s.LoadMore()
	time.Sleep(50 * time.Millisecond)

	cat.Replace(listingFixture(6))
	v := s.View()
	if v.RevealCount > PageSize {
		t.Errorf("Expected window reset after catalog replace, got %d", v.RevealCount)
	}
	if v.Criteria.PriceRange != cat.Bounds().Price {
		t.Errorf("Expected price range reset to the new full span, got %+v", v.Criteria.PriceRange)
	}
	if v.TotalHits != 6 {
		t.Errorf("Expected all 6 new listings visible with reset ranges, got %d", v.TotalHits)
	}
}

func TestStore_SweepEvictsIdleSessions(t *testing.T) {
	st, _ := testStore(5)
	st.IdleTimeout = 10 * time.Millisecond
	st.Get("s1")
	st.Get("s2")
	if st.Len() != 2 {
		t.Fatalf("Expected 2 sessions, got %d", st.Len())
	}
	removed := st.Sweep(time.Now().Add(time.Second))
	if removed != 2 || st.Len() != 0 {
		t.Errorf("Expected both idle sessions evicted, removed=%d len=%d", removed, st.Len())
	}
}

func TestStore_GetMintsIdWhenEmpty(t *testing.T) {
	st, _ := testStore(5)
	s := st.Get("")
	if s.Id == "" {
		t.Errorf("Expected a minted session id")
	}
	if got := st.Get(s.Id); got != s {
		t.Errorf("Expected the same session back for its id")
	}
}
