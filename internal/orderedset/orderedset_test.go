package orderedset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddKeepsFirstOccurrence(t *testing.T) {
	s := New[rune]()
	for _, r := range "abracadabra" {
		s.Add(r)
	}
	if diff := cmp.Diff(s.Items(), []rune("abrcd")); diff != "" {
		t.Errorf("Items diff (-got +want):\n%s", diff)
	}
	if s.Add('a') {
		t.Error("Add('a') = true on existing element, want false")
	}
}

func TestRemoveReindexes(t *testing.T) {
	s := New(10, 20, 30, 40)
	if !s.Remove(20) {
		t.Fatal("Remove(20) = false, want true")
	}
	if s.Remove(20) {
		t.Error("second Remove(20) = true, want false")
	}
	s.RemoveAt(0)
	if diff := cmp.Diff(s.Items(), []int{30, 40}); diff != "" {
		t.Errorf("Items diff (-got +want):\n%s", diff)
	}
	if s.Contains(10) {
		t.Error("Contains(10) after RemoveAt(0) = true")
	}
	// 40 moved down twice; a stale index would remove the wrong element.
	if !s.Remove(40) {
		t.Fatal("Remove(40) = false, want true")
	}
	if diff := cmp.Diff(s.Items(), []int{30}); diff != "" {
		t.Errorf("Items diff (-got +want):\n%s", diff)
	}
}

func TestUnion(t *testing.T) {
	a := New("x", "y")
	a.Union(New("y", "z"))
	a.Union(nil)
	if diff := cmp.Diff(a.Items(), []string{"x", "y", "z"}); diff != "" {
		t.Errorf("Items diff (-got +want):\n%s", diff)
	}
	if got, want := a.At(2), "z"; got != want {
		t.Errorf("At(2) = %q, want %q", got, want)
	}
}

func TestNilSet(t *testing.T) {
	var s *Set[int]
	if s.Len() != 0 || s.Contains(1) || s.Items() != nil {
		t.Error("nil set should behave as empty")
	}
	var zero Set[int]
	zero.Add(3)
	if !zero.Contains(3) {
		t.Error("zero-value set should accept Add")
	}
}
