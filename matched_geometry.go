package matchgeo

// Role says whether a node defines a shared slot's geometry or follows it.
type Role uint8

const (
	// Mirror nodes read the slot and move onto the publisher.
	Mirror Role = iota
	// Publisher nodes report their measured frame into the slot.
	Publisher
)

func (r Role) String() string {
	if r == Publisher {
		return "publisher"
	}
	return "mirror"
}

// Properties selects which parts of the publisher's frame a mirror adopts.
type Properties uint8

const (
	// MatchPosition moves the mirror onto the publisher's origin.
	MatchPosition Properties = 1 << iota
	// MatchSize resizes the mirror to the publisher's size.
	MatchSize

	// MatchFrame adopts both position and size.
	MatchFrame = MatchPosition | MatchSize
)

// Has reports whether every property in q is set in p.
func (p Properties) Has(q Properties) bool {
	return p&q == q
}

// MatchedGeometry is the geometry effect attached to one element.
type MatchedGeometry struct {
	Key        GeometryKey
	Role       Role
	Properties Properties
}

// GeometryOption configures WithMatchedGeometry.
type GeometryOption func(*MatchedGeometry)

// IsSource sets the element's role. A source publishes its frame; the
// default is a mirror.
func IsSource(source bool) GeometryOption {
	return func(g *MatchedGeometry) {
		if source {
			g.Role = Publisher
		} else {
			g.Role = Mirror
		}
	}
}

// WithProperties limits which parts of the frame a mirror adopts. The
// default is MatchFrame.
func WithProperties(p Properties) GeometryOption {
	return func(g *MatchedGeometry) {
		g.Properties = p
	}
}

// WithMatchedGeometry links the element to the slot id in ns. Publishers
// and mirrors sharing a slot animate between each other's frames even when
// they live in unrelated parts of the tree.
func WithMatchedGeometry[ID comparable](ns Namespace, id ID, opts ...GeometryOption) Option {
	g := MatchedGeometry{
		Key:        MakeKey(ns, id),
		Role:       Mirror,
		Properties: MatchFrame,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return func(e *Element) {
		e.geometry = &g
	}
}

// MaybeRect is a Rect that may not have been measured yet.
type MaybeRect struct {
	Rect  Rect
	Valid bool
}

// Known wraps a measured rect.
func Known(r Rect) MaybeRect {
	return MaybeRect{Rect: r, Valid: true}
}

// MirrorFrame is where a mirror is drawn in one pass.
type MirrorFrame struct {
	Offset Point
	Frame  Rect
}

// ComputeMirrorFrame places a mirror. natural is the mirror's own layout
// frame this pass, original is the frame it last reported through its
// observer, and target is the publisher frame from the previous pass.
//
// The offset is target.origin - original.origin when both are known, and
// zero otherwise. The drawn frame is natural shifted by the offset and, when
// the target is known, sized to it.
func ComputeMirrorFrame(natural Rect, original, target MaybeRect, props Properties) MirrorFrame {
	var offset Point
	if props.Has(MatchPosition) && original.Valid && target.Valid {
		offset = target.Rect.Origin().Sub(original.Rect.Origin())
	}
	frame := natural.Translate(offset.X, offset.Y)
	if props.Has(MatchSize) && target.Valid {
		frame = frame.WithSize(target.Rect.Size())
	}
	return MirrorFrame{Offset: offset, Frame: frame}
}
