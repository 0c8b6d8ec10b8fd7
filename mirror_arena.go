package matchgeo

import "time"

// nodeIdentity names one mirror instance across passes: the scope it reads
// from and its structural path in the tree.
type nodeIdentity struct {
	scope *GeometryScope
	path  string
}

// mirrorState is the per-instance state of a mirror. original is the frame
// its observer last reported, shown is the frame it was last drawn at.
type mirrorState struct {
	original MaybeRect
	observer *FrameObserver
	shown    MaybeRect
	anim     transition
}

// present returns the frame to draw this pass for a mirror that wants to be
// at desired, and whether a transition is still running. The first
// presentation of an instance never animates.
func (s *mirrorState) present(desired Rect, animator Animator, now time.Time) (Rect, bool) {
	if !s.shown.Valid || animator == nil {
		s.shown = Known(desired)
		s.anim = transition{}
		return desired, false
	}
	if !s.anim.active || s.anim.to != desired {
		if s.shown.Rect == desired {
			s.anim = transition{}
			return desired, false
		}
		s.anim = transition{from: s.shown.Rect, to: desired, start: now, active: true}
	}
	frame, done := animator.Frame(s.anim.from, s.anim.to, now.Sub(s.anim.start))
	if done {
		s.anim = transition{}
		frame = desired
	}
	s.shown = Known(frame)
	return frame, !done
}

// mirrorArena keeps mirror state alive across passes, keyed by identity.
// Each pass marks the identities it visits; sweep drops the rest, so a
// mirror that leaves the tree or changes identity starts over.
type mirrorArena struct {
	states map[nodeIdentity]*mirrorState
	active map[nodeIdentity]bool
}

func newMirrorArena() *mirrorArena {
	return &mirrorArena{
		states: make(map[nodeIdentity]*mirrorState),
		active: make(map[nodeIdentity]bool),
	}
}

// acquire returns the state for id, creating it on first use. onMeasure
// runs whenever the new instance's observer fires.
func (a *mirrorArena) acquire(id nodeIdentity, onMeasure func()) *mirrorState {
	a.active[id] = true
	if st, ok := a.states[id]; ok {
		return st
	}
	st := &mirrorState{}
	st.observer = NewFrameObserver(func(r Rect) {
		st.original = Known(r)
		if onMeasure != nil {
			onMeasure()
		}
	})
	a.states[id] = st
	return st
}

// sweep drops state for identities not acquired since the last sweep and
// returns how many were dropped.
func (a *mirrorArena) sweep() int {
	removed := 0
	for id := range a.states {
		if !a.active[id] {
			delete(a.states, id)
			removed++
		}
	}
	clear(a.active)
	return removed
}

// Len returns the number of live mirror instances.
func (a *mirrorArena) Len() int {
	return len(a.states)
}
