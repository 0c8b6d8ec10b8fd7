package matchgeo

import (
	"iter"
	"maps"
	"slices"
)

// GeometryTable maps each slot to the frame its publisher reported during
// one completed render pass. A table is immutable once built: readers can
// hold on to it across passes and the zero value is an empty table.
type GeometryTable struct {
	entries map[GeometryKey]Rect
}

// EmptyTable returns a table with no entries.
func EmptyTable() GeometryTable {
	return GeometryTable{}
}

// Lookup returns the published frame for key.
func (t GeometryTable) Lookup(key GeometryKey) (Rect, bool) {
	r, ok := t.entries[key]
	return r, ok
}

// Len returns the number of published slots.
func (t GeometryTable) Len() int {
	return len(t.entries)
}

// All iterates over every slot in the table. Order is unspecified.
func (t GeometryTable) All() iter.Seq2[GeometryKey, Rect] {
	return func(yield func(GeometryKey, Rect) bool) {
		for k, r := range t.entries {
			if !yield(k, r) {
				return
			}
		}
	}
}

// Keys returns the slot keys sorted by their string form, for stable output.
func (t GeometryTable) Keys() []GeometryKey {
	keys := slices.Collect(maps.Keys(t.entries))
	slices.SortFunc(keys, func(a, b GeometryKey) int {
		switch as, bs := a.String(), b.String(); {
		case as < bs:
			return -1
		case as > bs:
			return 1
		}
		return 0
	})
	return keys
}

// Equal reports whether both tables hold exactly the same slots and frames.
func (t GeometryTable) Equal(other GeometryTable) bool {
	return maps.Equal(t.entries, other.entries)
}
