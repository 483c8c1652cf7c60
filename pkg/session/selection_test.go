package session

import "testing"

func TestSelection_CapAtFour(t *testing.T) {
	s := Selection{}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		s = s.Toggle(id, true)
	}
	if len(s) != MaxSelection {
		t.Fatalf("Expected %d selected, got %d", MaxSelection, len(s))
	}
	for i, want := range []string{"a", "b", "c", "d"} {
		if s[i] != want {
			t.Errorf("Expected first four attempts kept in order, got %v", s)
			break
		}
	}
	if s.Has("e") {
		t.Errorf("Fifth id must be silently dropped")
	}
}

func TestSelection_ToggleOffAlwaysSucceeds(t *testing.T) {
	s := Selection{"a", "b", "c", "d"}
	s = s.Toggle("b", false)
	if len(s) != 3 || s.Has("b") {
		t.Errorf("Expected b removed, got %v", s)
	}
	// removing an absent id is a no-op
	s = s.Toggle("zz", false)
	if len(s) != 3 {
		t.Errorf("Expected no change removing unknown id, got %v", s)
	}
	// there is room again
	s = s.Toggle("e", true)
	if !s.Has("e") {
		t.Errorf("Expected e added after freeing a slot, got %v", s)
	}
}

func TestSelection_ToggleOnTwiceKeepsOne(t *testing.T) {
	s := Selection{}
	s = s.Toggle("a", true)
	s = s.Toggle("a", true)
	if len(s) != 1 {
		t.Errorf("Expected one entry, got %v", s)
	}
}

func TestSelection_CanCompare(t *testing.T) {
	if (Selection{"a"}).CanCompare() {
		t.Errorf("One selection must not offer comparison")
	}
	if !(Selection{"a", "b"}).CanCompare() {
		t.Errorf("Two selections must offer comparison")
	}
}
