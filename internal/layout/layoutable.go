package layout

// Layoutable is anything that can participate in layout calculation.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this node.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out, in document order.
	LayoutChildren() []Layoutable

	// SetLayout stores the computed layout.
	SetLayout(Layout)

	// GetLayout returns the last computed layout.
	GetLayout() Layout

	// IntrinsicSize returns the natural content size used for Auto dimensions.
	IntrinsicSize() (width, height int)
}
