package matchgeo

// FrameObserver watches the measured frame of one node and calls back when
// it first becomes available and whenever it changes value. It never alters
// what is drawn.
type FrameObserver struct {
	last Rect
	seen bool
	fn   func(Rect)
}

// NewFrameObserver creates an observer that calls fn on changes.
func NewFrameObserver(fn func(Rect)) *FrameObserver {
	return &FrameObserver{fn: fn}
}

// Observe feeds the frame measured in this layout pass. ok is false when the
// node was not laid out, which never fires the callback. Observe reports
// whether the callback fired.
func (o *FrameObserver) Observe(frame Rect, ok bool) bool {
	if !ok {
		return false
	}
	if o.seen && o.last == frame {
		return false
	}
	o.last, o.seen = frame, true
	if o.fn != nil {
		o.fn(frame)
	}
	return true
}

// Last returns the most recently observed frame.
func (o *FrameObserver) Last() (Rect, bool) {
	return o.last, o.seen
}
