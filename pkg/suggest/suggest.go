package suggest

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

// Suggester answers prefix queries over the words found in listing titles,
// cities and amenities. Rebuilt as a whole when the catalog is replaced.
type Suggester struct {
	mu   sync.RWMutex
	trie *Trie
	hits map[string]int
}

type Suggestion struct {
	Word string `json:"match"`
	Hits int    `json:"hits"`
}

func NewSuggester() *Suggester {
	return &Suggester{
		trie: NewTrie(),
		hits: map[string]int{},
	}
}

// NormalizeWord lower-cases and strips everything that is not a letter or
// digit, so "Loading-Dock," and "loading dock" meet in the same bucket.
func NormalizeWord(text string) string {
	ret := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			ret = append(ret, unicode.ToLower(r))
		}
	}
	return string(ret)
}

func (s *Suggester) Index(items []types.Listing) {
	trie := NewTrie()
	hits := map[string]int{}
	for i := range items {
		seen := map[string]struct{}{}
		addWords(seen, items[i].Title)
		addWords(seen, items[i].Address.City)
		for _, a := range items[i].Amenities {
			addWords(seen, a)
		}
		for word := range seen {
			if _, ok := hits[word]; !ok {
				trie.Insert(word)
			}
			hits[word]++
		}
	}
	s.mu.Lock()
	s.trie = trie
	s.hits = hits
	s.mu.Unlock()
}

func addWords(seen map[string]struct{}, text string) {
	for _, part := range strings.Fields(text) {
		word := NormalizeWord(part)
		if len(word) < 2 {
			continue
		}
		seen[word] = struct{}{}
	}
}

// Suggest returns up to limit completions for the prefix, most frequent
// first.
func (s *Suggester) Suggest(prefix string, limit int) []Suggestion {
	prefix = NormalizeWord(prefix)
	if prefix == "" {
		return nil
	}
	s.mu.RLock()
	words := s.trie.FindMatches(prefix)
	out := make([]Suggestion, 0, len(words))
	for _, w := range words {
		out = append(out, Suggestion{Word: w, Hits: s.hits[w]})
	}
	s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Hits > out[j].Hits
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
