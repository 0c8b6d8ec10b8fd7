package matchgeo

// MarkDirty schedules another render pass. State.Set, a changed geometry
// table and a mirror's first or changed measurement all call it.
func (a *App) MarkDirty() {
	if a == nil {
		panic("matchgeo: nil app in MarkDirty")
	}
	a.dirty.Store(true)
}

// Dirty reports whether a render pass is pending.
func (a *App) Dirty() bool {
	return a.dirty.Load()
}

// checkAndClearDirty returns true if dirty and clears the flag.
func (a *App) checkAndClearDirty() bool {
	return a.dirty.Swap(false)
}
