package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box in absolute coordinates. This is the frame
	// that publishers report and mirrors observe.
	Rect Rect

	// ContentRect is Rect minus padding, where children are placed.
	ContentRect Rect
}
