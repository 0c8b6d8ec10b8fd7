package matchgeo

import "github.com/grindlemire/matchgeo/internal/layout"

func defaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// LayoutStyle returns the style used for layout. A border adds one cell of
// padding on each side.
func (e *Element) LayoutStyle() LayoutStyle {
	style := e.style
	if e.border != BorderNone {
		style.Padding.Top++
		style.Padding.Right++
		style.Padding.Bottom++
		style.Padding.Left++
	}
	return style
}

// LayoutChildren returns the children to be laid out.
func (e *Element) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(e.children))
	for i, child := range e.children {
		result[i] = child
	}
	return result
}

// SetLayout stores the computed layout.
func (e *Element) SetLayout(l LayoutResult) {
	e.layout = l
}

// GetLayout returns the last computed layout.
func (e *Element) GetLayout() LayoutResult {
	return e.layout
}

// IntrinsicSize returns the content-based size used for Auto dimensions:
// the text extent for text elements, otherwise the children stacked along
// the main axis, plus padding and border.
func (e *Element) IntrinsicSize() (width, height int) {
	style := e.LayoutStyle()
	switch {
	case e.text != "":
		width, height = StringWidth(e.text), 1
	case len(e.children) > 0:
		isRow := style.Direction == Row
		for i, child := range e.children {
			cw, ch := child.IntrinsicSize()
			cw, ch = fixedOr(child.style.Width, cw), fixedOr(child.style.Height, ch)
			m := child.style.Margin
			cw += m.Horizontal()
			ch += m.Vertical()
			gap := 0
			if i > 0 {
				gap = style.Gap
			}
			if isRow {
				width += cw + gap
				height = max(height, ch)
			} else {
				width = max(width, cw)
				height += ch + gap
			}
		}
	}
	return width + style.Padding.Horizontal(), height + style.Padding.Vertical()
}

func fixedOr(v Value, fallback int) int {
	if v.Unit == layout.UnitFixed {
		return int(v.Amount)
	}
	return fallback
}

// Calculate lays out this element and its descendants in a viewport of the
// given size at the origin.
func (e *Element) Calculate(availableWidth, availableHeight int) {
	layout.Calculate(e, availableWidth, availableHeight)
}

// calculateIn lays out the subtree with its border box pinned to box.
func (e *Element) calculateIn(box Rect) {
	layout.CalculateIn(e, box)
}

// Rect returns the computed border box in absolute coordinates.
func (e *Element) Rect() Rect {
	return e.layout.Rect
}

// ContentRect returns the computed content area.
func (e *Element) ContentRect() Rect {
	return e.layout.ContentRect
}

// saveLayouts records the layouts of e's subtree so they can be restored
// after the subtree is temporarily laid out elsewhere.
func (e *Element) saveLayouts() map[*Element]LayoutResult {
	saved := make(map[*Element]LayoutResult)
	e.Walk(func(n *Element) bool {
		saved[n] = n.layout
		return true
	})
	return saved
}

func restoreLayouts(saved map[*Element]LayoutResult) {
	for n, l := range saved {
		n.layout = l
	}
}
