package session

// MaxSelection caps how many listings can be picked for comparison.
// MinCompare is the smallest selection the comparison view is offered for.
const (
	MaxSelection = 4
	MinCompare   = 2
)

// Selection is the ordered set of listing ids chosen for comparison.
type Selection []string

func (s Selection) Has(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle returns the selection after turning id on or off. Turning on while
// at capacity is a silent no-op, turning off always succeeds.
func (s Selection) Toggle(id string, selected bool) Selection {
	if selected {
		if s.Has(id) || len(s) >= MaxSelection {
			return s
		}
		return append(s, id)
	}
	for i, v := range s {
		if v == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func (s Selection) CanCompare() bool {
	return len(s) >= MinCompare
}
