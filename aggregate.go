package matchgeo

// Contribution is the single entry one publisher emits per render pass.
type Contribution struct {
	Key   GeometryKey
	Frame Rect
}

// DuplicateFunc is called when two publishers claim the same slot in one
// pass. previous lost to next.
type DuplicateFunc func(key GeometryKey, previous, next Rect)

// Aggregator collects the contributions of one render pass. Publishers only
// append; Reduce merges everything into a table once the walk is done.
type Aggregator struct {
	contributions []Contribution
	onDuplicate   DuplicateFunc
}

// NewAggregator creates an aggregator. onDuplicate may be nil, in which case
// duplicates are logged as warnings.
func NewAggregator(onDuplicate DuplicateFunc) *Aggregator {
	return &Aggregator{onDuplicate: onDuplicate}
}

// Contribute records frame for key. Calls must follow document order.
func (a *Aggregator) Contribute(key GeometryKey, frame Rect) {
	a.contributions = append(a.contributions, Contribution{Key: key, Frame: frame})
}

// Len returns the number of contributions recorded since the last Reduce.
func (a *Aggregator) Len() int {
	return len(a.contributions)
}

// Reduce merges the recorded contributions into a new table and clears the
// aggregator for the next pass.
func (a *Aggregator) Reduce() GeometryTable {
	t := Aggregate(a.contributions, a.onDuplicate)
	a.contributions = a.contributions[:0]
	return t
}

// Aggregate folds contributions left to right into a table. When a key
// repeats, the later contribution wins and onDuplicate (or a warning log,
// if onDuplicate is nil) reports the conflict. Rendering never aborts.
func Aggregate(contributions []Contribution, onDuplicate DuplicateFunc) GeometryTable {
	if len(contributions) == 0 {
		return EmptyTable()
	}
	entries := make(map[GeometryKey]Rect, len(contributions))
	for _, c := range contributions {
		if prev, dup := entries[c.Key]; dup {
			if onDuplicate != nil {
				onDuplicate(c.Key, prev, c.Frame)
			} else {
				Logger().Warn("duplicate publisher for geometry slot",
					"key", c.Key.String(), "previous", prev.String(), "next", c.Frame.String())
			}
		}
		entries[c.Key] = c.Frame
	}
	return GeometryTable{entries: entries}
}
