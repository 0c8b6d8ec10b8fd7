package matchgeo

// Option configures an Element.
type Option func(*Element)

// --- Dimension Options ---

// WithWidth sets a fixed width in cells.
func WithWidth(cells int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(cells)
	}
}

// WithWidthPercent sets width as a percentage of the parent's content width.
func WithWidthPercent(percent float64) Option {
	return func(e *Element) {
		e.style.Width = Percent(percent)
	}
}

// WithHeight sets a fixed height in cells.
func WithHeight(cells int) Option {
	return func(e *Element) {
		e.style.Height = Fixed(cells)
	}
}

// WithHeightPercent sets height as a percentage of the parent's content
// height.
func WithHeightPercent(percent float64) Option {
	return func(e *Element) {
		e.style.Height = Percent(percent)
	}
}

// WithFrame sets both width and height in cells.
func WithFrame(width, height int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(width)
		e.style.Height = Fixed(height)
	}
}

// WithMinWidth sets the minimum width in cells.
func WithMinWidth(cells int) Option {
	return func(e *Element) {
		e.style.MinWidth = Fixed(cells)
	}
}

// WithMaxWidth sets the maximum width in cells.
func WithMaxWidth(cells int) Option {
	return func(e *Element) {
		e.style.MaxWidth = Fixed(cells)
	}
}

// --- Flex Container Options ---

// WithDirection sets the main axis direction for laying out children.
func WithDirection(d Direction) Option {
	return func(e *Element) {
		e.style.Direction = d
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) Option {
	return func(e *Element) {
		e.style.JustifyContent = j
	}
}

// WithAlign sets how children are positioned on the cross axis.
func WithAlign(a Align) Option {
	return func(e *Element) {
		e.style.AlignItems = a
	}
}

// WithGap sets the space between children on the main axis.
func WithGap(cells int) Option {
	return func(e *Element) {
		e.style.Gap = cells
	}
}

// --- Flex Item Options ---

// WithFlexGrow sets how much this element grows relative to siblings.
func WithFlexGrow(factor float64) Option {
	return func(e *Element) {
		e.style.FlexGrow = factor
	}
}

// WithFlexShrink sets how much this element shrinks relative to siblings.
func WithFlexShrink(factor float64) Option {
	return func(e *Element) {
		e.style.FlexShrink = factor
	}
}

// --- Spacing Options ---

// WithPadding sets equal padding on all sides.
func WithPadding(cells int) Option {
	return func(e *Element) {
		e.style.Padding = EdgeAll(cells)
	}
}

// WithPaddingEdges sets padding per side.
func WithPaddingEdges(edges Edges) Option {
	return func(e *Element) {
		e.style.Padding = edges
	}
}

// WithMargin sets equal margin on all sides.
func WithMargin(cells int) Option {
	return func(e *Element) {
		e.style.Margin = EdgeAll(cells)
	}
}

// WithMarginEdges sets margin per side.
func WithMarginEdges(edges Edges) Option {
	return func(e *Element) {
		e.style.Margin = edges
	}
}

// --- Visual Options ---

// WithBorder sets the border style. A border takes one cell on each side.
func WithBorder(b BorderStyle) Option {
	return func(e *Element) {
		e.border = b
	}
}

// WithBorderColor sets the border foreground color.
func WithBorderColor(c Color) Option {
	return func(e *Element) {
		e.borderStyle = e.borderStyle.Foreground(c)
	}
}

// WithBackground fills the element with c.
func WithBackground(c Color) Option {
	return func(e *Element) {
		s := NewStyle().Background(c)
		e.background = &s
	}
}

// --- Text Options ---

// WithText sets the text content.
func WithText(text string) Option {
	return func(e *Element) {
		e.text = text
	}
}

// WithTextColor sets the text foreground color. Children inherit it.
func WithTextColor(c Color) Option {
	return func(e *Element) {
		e.textStyle = e.textStyle.Foreground(c)
		e.textStyleSet = true
	}
}

// WithTextStyle sets the full text style. Children inherit it.
func WithTextStyle(s Style) Option {
	return func(e *Element) {
		e.textStyle = s
		e.textStyleSet = true
	}
}

// WithTextAlign sets horizontal text alignment.
func WithTextAlign(a TextAlign) Option {
	return func(e *Element) {
		e.textAlign = a
	}
}

// --- Identity and Geometry Options ---

// WithHidden keeps the element in layout but stops it and its subtree from
// being drawn.
func WithHidden(hidden bool) Option {
	return func(e *Element) {
		e.hidden = hidden
	}
}

// WithIdentity gives the element an explicit identity. Per-node state such
// as a mirror's last measured frame follows the identity instead of the
// element's position among its siblings, and changing it starts that state
// over.
func WithIdentity(id string) Option {
	return func(e *Element) {
		e.identity = id
	}
}

// WithGeometryScope installs scope for this element's subtree. Matched
// geometry inside the subtree publishes to and reads from scope instead of
// the app's root scope.
func WithGeometryScope(scope *GeometryScope) Option {
	return func(e *Element) {
		e.scope = scope
	}
}

// WithChildren appends children.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.AddChild(children...)
	}
}
