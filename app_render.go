package matchgeo

import "time"

// Render runs one render pass immediately:
//
//  1. rebuild the tree from the root component, if one is set
//  2. lay it out to the app size
//  3. read every scope's table from the previous pass
//  4. walk in document order: paint ordinary nodes, let publishers
//     contribute their frames, place and queue mirror overlays, and feed
//     mirrors' natural frames to their observers
//  5. paint the queued overlays on top
//  6. flush the buffer to the terminal
//  7. aggregate and publish each scope's table
//  8. drop state of mirrors that were not visited
//  9. report the pass
//
// A mirror reads the table built by the previous pass, so a publisher's
// frame reaches its mirrors one pass later. Publishing a changed table
// marks the app dirty, which schedules that pass.
func (a *App) Render() {
	a.dirty.Store(false)
	a.renderPass()
}

func (a *App) renderPass() {
	w, h := a.Size()
	if a.buffer.Width() != w || a.buffer.Height() != h {
		a.buffer.Resize(w, h)
		a.needsFullRedraw = true
	}

	if a.rootComponent != nil {
		a.root = a.rootComponent.Render(a)
		if a.root != nil {
			a.root.component = a.rootComponent
		}
		a.mounts.sweep()
	}

	pw := &passWalk{
		app:    a,
		rec:    newRecorder(a.buffer.Bounds()),
		tables: make(map[*GeometryScope]GeometryTable),
		now:    a.clock(),
	}
	pw.enterScope(a.geometry)

	if a.root != nil {
		a.root.Calculate(w, h)
		pw.visit(a.root, "", a.geometry, inheritedStyle{}, true, false)
	}
	pw.paintOverlays()

	a.buffer.Clear()
	pw.rec.list.Replay(a.buffer)
	cells := flush(a.terminal, a.buffer, a.needsFullRedraw)
	a.needsFullRedraw = false

	report := PassReport{
		Pass:    a.pass + 1,
		Size:    Size{Width: w, Height: h},
		Mirrors: pw.mirrors,
		Display: pw.rec.list,
		Cells:   cells,
	}
	for _, scope := range pw.scopes {
		table, changed := scope.commit()
		report.Scopes = append(report.Scopes, ScopeReport{
			Name:    scope.Name(),
			Table:   table,
			Changed: changed,
		})
	}

	report.Dropped = a.mirrors.sweep()
	if pw.animating {
		report.Animating = true
		a.MarkDirty()
	}

	a.pass++
	a.last = report
	Logger().Debug("render pass",
		"pass", report.Pass,
		"scopes", len(report.Scopes),
		"mirrors", len(report.Mirrors),
		"cells", cells,
		"dirty", a.Dirty())
	for _, fn := range a.observers {
		fn(report)
	}
}

// overlay is a mirror copy queued for painting after the main walk.
type overlay struct {
	el        *Element
	frame     Rect
	inherited inheritedStyle
}

// passWalk is the state of one document-order walk.
type passWalk struct {
	app       *App
	rec       *recorder
	tables    map[*GeometryScope]GeometryTable
	scopes    []*GeometryScope
	overlays  []overlay
	mirrors   []MirrorReport
	now       time.Time
	animating bool
}

// enterScope snapshots scope's table the first time the walk meets it.
// Every mirror in the pass reads that snapshot.
func (pw *passWalk) enterScope(scope *GeometryScope) {
	if _, ok := pw.tables[scope]; ok {
		return
	}
	pw.tables[scope] = scope.Table()
	pw.scopes = append(pw.scopes, scope)
}

// visit handles e and then its children. visible is false below a hidden
// element; inMirror is true inside a mirror's natural subtree, which keeps
// its layout slot but is not drawn in place.
func (pw *passWalk) visit(e *Element, path string, scope *GeometryScope, inherited inheritedStyle, visible, inMirror bool) {
	if e.scope != nil {
		scope = e.scope
		pw.enterScope(scope)
	}
	visible = visible && !e.hidden

	textStyle, bg := effectiveStyles(e, inherited)
	next := inheritedStyle{textStyle: textStyle, bg: bg}

	switch {
	case e.isPublisher():
		scope.contribute(e.geometry.Key, e.Rect())
	case e.isMirror():
		pw.placeMirror(e, path, scope, inherited, visible)
		inMirror = true
	}

	if visible && !inMirror {
		paintSelf(pw.rec, e, textStyle, bg)
	}
	for i, child := range e.children {
		pw.visit(child, childPath(path, child, i), scope, next, visible, inMirror)
	}
}

// placeMirror computes where the mirror e is drawn this pass, queues its
// overlay when visible, and reports its natural frame to its observer.
func (pw *passWalk) placeMirror(e *Element, path string, scope *GeometryScope, inherited inheritedStyle, visible bool) {
	a := pw.app
	g := e.geometry
	natural := e.Rect()

	st := a.mirrors.acquire(nodeIdentity{scope: scope, path: path}, a.MarkDirty)

	var target MaybeRect
	if r, ok := pw.tables[scope].Lookup(g.Key); ok {
		target = Known(r)
	}
	original := st.original
	mf := ComputeMirrorFrame(natural, original, target, g.Properties)

	shown, animating := st.present(mf.Frame, a.animator, pw.now)
	if animating {
		pw.animating = true
	}
	if visible {
		pw.overlays = append(pw.overlays, overlay{el: e, frame: shown, inherited: inherited})
	}

	measured := st.observer.Observe(natural, true)

	pw.mirrors = append(pw.mirrors, MirrorReport{
		Key:      g.Key,
		Path:     path,
		Natural:  natural,
		Original: original,
		Target:   target,
		Offset:   mf.Offset,
		Frame:    mf.Frame,
		Shown:    shown,
		Measured: measured,
	})
}

// paintOverlays lays out each queued mirror copy at its overlay frame,
// paints it over everything drawn so far, then restores the natural
// layout. Overlays never move other nodes.
func (pw *passWalk) paintOverlays() {
	pw.rec.overlay = true
	defer func() { pw.rec.overlay = false }()
	for _, ov := range pw.overlays {
		saved := ov.el.saveLayouts()
		ov.el.calculateIn(ov.frame)
		paintTree(pw.rec, ov.el, ov.inherited, true)
		restoreLayouts(saved)
	}
}
