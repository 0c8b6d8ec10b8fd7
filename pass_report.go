package matchgeo

import (
	"fmt"
	"strings"
)

// PassReport describes one completed render pass.
type PassReport struct {
	Pass   uint64
	Size   Size
	Scopes []ScopeReport
	// Mirrors lists every mirror visited, in document order.
	Mirrors []MirrorReport
	// Display is everything painted, overlays last.
	Display DisplayList
	// Cells is how many cells were written to the terminal.
	Cells int
	// Dropped is how many mirror instances left the tree this pass.
	Dropped   int
	Animating bool
}

// ScopeReport is the table a scope published at the end of a pass.
type ScopeReport struct {
	Name    string
	Table   GeometryTable
	Changed bool
}

// MirrorReport is how one mirror was placed.
type MirrorReport struct {
	Key  GeometryKey
	Path string
	// Natural is the mirror's own layout frame this pass.
	Natural Rect
	// Original is the frame its observer held when the pass started.
	Original MaybeRect
	// Target is the publisher frame read from the previous pass's table.
	Target MaybeRect
	Offset Point
	// Frame is the computed overlay frame; Shown is where it was drawn
	// after animation.
	Frame Rect
	Shown Rect
	// Measured is set when the observer fired this pass.
	Measured bool
}

// Scope returns the report of the scope with the given name.
func (r PassReport) Scope(name string) (ScopeReport, bool) {
	for _, s := range r.Scopes {
		if s.Name == name {
			return s, true
		}
	}
	return ScopeReport{}, false
}

// Mirror returns the first mirror report for key.
func (r PassReport) Mirror(key GeometryKey) (MirrorReport, bool) {
	for _, m := range r.Mirrors {
		if m.Key == key {
			return m, true
		}
	}
	return MirrorReport{}, false
}

// Changed reports whether any scope published a changed table.
func (r PassReport) Changed() bool {
	for _, s := range r.Scopes {
		if s.Changed {
			return true
		}
	}
	return false
}

func (r PassReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pass %d %dx%d", r.Pass, r.Size.Width, r.Size.Height)
	for _, s := range r.Scopes {
		fmt.Fprintf(&sb, "\n  scope %s changed=%t", s.Name, s.Changed)
		for _, k := range s.Table.Keys() {
			f, _ := s.Table.Lookup(k)
			fmt.Fprintf(&sb, "\n    %s %s", k, f)
		}
	}
	for _, m := range r.Mirrors {
		fmt.Fprintf(&sb, "\n  mirror %s at %s natural=%s offset=(%d,%d) shown=%s",
			m.Key, m.Path, m.Natural, m.Offset.X, m.Offset.Y, m.Shown)
	}
	return sb.String()
}
