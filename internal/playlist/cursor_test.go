package playlist

import "testing"

func TestNewCursor_StartsAtZero(t *testing.T) {
	c := NewCursor(abc())

	if c.Index() != 0 {
		t.Errorf("Index() = %d, want 0", c.Index())
	}
	if c.Current() == nil || c.Current().ID != "a" {
		t.Errorf("Current() = %v, want a", c.Current())
	}
}

func TestCursor_Next_Wraps(t *testing.T) {
	c := NewCursor(abc())

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		if !c.Next() {
			t.Fatalf("step %d: Next() = false", i)
		}
		if c.Index() != w {
			t.Errorf("step %d: Index() = %d, want %d", i, c.Index(), w)
		}
	}
}

func TestCursor_Previous_Wraps(t *testing.T) {
	c := NewCursor(abc())

	want := []int{2, 1, 0, 2}
	for i, w := range want {
		if !c.Previous() {
			t.Fatalf("step %d: Previous() = false", i)
		}
		if c.Index() != w {
			t.Errorf("step %d: Index() = %d, want %d", i, c.Index(), w)
		}
	}
}

func TestCursor_NextCycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 6; n++ {
		tracks := make([]Track, n)
		for i := range tracks {
			tracks[i] = Track{ID: string(rune('a' + i))}
		}
		for start := range n {
			c := NewCursor(NewCatalog(tracks...))
			c.MoveTo(start)
			for range n {
				c.Next()
			}
			if c.Index() != start {
				t.Errorf("n=%d start=%d: Index() = %d after %d Next()", n, start, c.Index(), n)
			}
		}
	}
}

func TestCursor_PreviousInvertsNext(t *testing.T) {
	for start := range 3 {
		c := NewCursor(abc())
		c.MoveTo(start)

		c.Next()
		c.Previous()
		if c.Index() != start {
			t.Errorf("Previous(Next()) from %d = %d", start, c.Index())
		}

		c.Previous()
		c.Next()
		if c.Index() != start {
			t.Errorf("Next(Previous()) from %d = %d", start, c.Index())
		}
	}
}

func TestCursor_EmptyCatalog(t *testing.T) {
	c := NewCursor(NewCatalog())

	if c.Next() {
		t.Error("Next() on empty catalog = true, want false")
	}
	if c.Previous() {
		t.Error("Previous() on empty catalog = true, want false")
	}
	if c.MoveTo(0) {
		t.Error("MoveTo(0) on empty catalog = true, want false")
	}
	if c.Index() != 0 {
		t.Errorf("Index() = %d, want 0", c.Index())
	}
	if c.Current() != nil {
		t.Error("Current() should be nil for empty catalog")
	}
}

func TestCursor_MoveTo(t *testing.T) {
	c := NewCursor(abc())

	if !c.MoveTo(2) {
		t.Fatal("MoveTo(2) = false")
	}
	if c.Index() != 2 {
		t.Errorf("Index() = %d, want 2", c.Index())
	}

	if c.MoveTo(3) {
		t.Error("MoveTo(3) = true, want false")
	}
	if c.MoveTo(-1) {
		t.Error("MoveTo(-1) = true, want false")
	}
	if c.Index() != 2 {
		t.Errorf("Index() = %d after invalid MoveTo, want 2", c.Index())
	}
}

func TestCursor_SingleTrack(t *testing.T) {
	c := NewCursor(NewCatalog(Track{ID: "only"}))

	c.Next()
	if c.Index() != 0 {
		t.Errorf("Index() after Next() = %d, want 0", c.Index())
	}
	c.Previous()
	if c.Index() != 0 {
		t.Errorf("Index() after Previous() = %d, want 0", c.Index())
	}
}
