package matchgeo

import "sync/atomic"

// GeometryScope owns the geometry table of one animation root. It collects
// publisher frames during a render pass and, once the pass is complete,
// replaces its table and schedules the next pass. Readers only ever see the
// table of the last completed pass.
//
// An App has one root scope (App.Geometry). Independent subtrees can get their
// own table by installing another scope with WithGeometryScope.
type GeometryScope struct {
	name       string
	table      *State[GeometryTable]
	agg        *Aggregator
	duplicates atomic.Uint64
}

// NewGeometryScope creates an empty scope owned by app.
func NewGeometryScope(app *App, name string) *GeometryScope {
	s := &GeometryScope{
		name:  name,
		table: NewState(app, EmptyTable()),
	}
	s.agg = NewAggregator(s.reportDuplicate)
	return s
}

// Name returns the scope name used in logs.
func (s *GeometryScope) Name() string {
	return s.name
}

// Table returns the table from the most recently completed pass.
func (s *GeometryScope) Table() GeometryTable {
	return s.table.Get()
}

// Publish replaces the current table. When the new table differs from the
// current one, bindings run and another render pass is scheduled. It
// reports whether the table changed.
func (s *GeometryScope) Publish(t GeometryTable) bool {
	if t.Equal(s.table.Get()) {
		return false
	}
	s.table.Set(t)
	return true
}

// OnChange registers fn to run whenever a changed table is published.
func (s *GeometryScope) OnChange(fn func(GeometryTable)) Unbind {
	return s.table.Bind(fn)
}

// Duplicates returns how many duplicate-publisher conflicts this scope has
// seen since it was created.
func (s *GeometryScope) Duplicates() uint64 {
	return s.duplicates.Load()
}

func (s *GeometryScope) contribute(key GeometryKey, frame Rect) {
	s.agg.Contribute(key, frame)
}

// commit reduces the pass's contributions and publishes the result.
func (s *GeometryScope) commit() (GeometryTable, bool) {
	t := s.agg.Reduce()
	return t, s.Publish(t)
}

func (s *GeometryScope) reportDuplicate(key GeometryKey, previous, next Rect) {
	s.duplicates.Add(1)
	Logger().Warn("duplicate publisher for geometry slot",
		"scope", s.name, "key", key.String(), "previous", previous.String(), "next", next.String())
}
