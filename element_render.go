package matchgeo

// inheritedStyle carries the text style and background that cascade from
// parent to child.
type inheritedStyle struct {
	textStyle Style
	bg        *Style
}

// effectiveStyles resolves e's text style and background against what it
// inherits. Default-colored text on a light background turns black.
func effectiveStyles(e *Element, inherited inheritedStyle) (textStyle Style, bg *Style) {
	textStyle = inherited.textStyle
	if e.textStyleSet {
		textStyle = e.textStyle
	}
	bg = inherited.bg
	if e.background != nil {
		bg = e.background
	}
	if bg != nil && bg.Bg.IsLight() && textStyle.Fg.IsDefault() {
		textStyle.Fg = Black
	}
	return textStyle, bg
}

// paintSelf draws e's own background, border and text, without children.
func paintSelf(s Surface, e *Element, textStyle Style, bg *Style) {
	rect := e.Rect()
	if !rect.Intersects(s.Bounds()) {
		return
	}
	if e.background != nil {
		s.FillRect(rect, *bg)
	}
	if e.border != BorderNone {
		bs := e.borderStyle
		if bg != nil && bs.Bg.IsDefault() {
			bs.Bg = bg.Bg
		}
		s.StrokeRect(rect, e.border, bs)
	}
	if e.text != "" {
		paintText(s, e, textStyle, bg)
	}
}

func paintText(s Surface, e *Element, textStyle Style, bg *Style) {
	content := e.ContentRect()
	if content.IsEmpty() {
		return
	}
	if bg != nil && textStyle.Bg.IsDefault() {
		textStyle.Bg = bg.Bg
	}
	x := content.X
	switch w := StringWidth(e.text); e.textAlign {
	case TextAlignCenter:
		x += max(0, (content.Width-w)/2)
	case TextAlignRight:
		x += max(0, content.Width-w)
	}
	s.DrawText(x, content.Y, e.text, textStyle, content.Intersect(s.Bounds()))
}

// paintTree draws e and its visible subtree. With skipMirrors set, mirrors
// below e are left out; they are drawn by their own overlays.
func paintTree(s Surface, e *Element, inherited inheritedStyle, skipMirrors bool) {
	if e.hidden {
		return
	}
	textStyle, bg := effectiveStyles(e, inherited)
	paintSelf(s, e, textStyle, bg)
	next := inheritedStyle{textStyle: textStyle, bg: bg}
	for _, child := range e.children {
		if skipMirrors && child.isMirror() {
			continue
		}
		paintTree(s, child, next, skipMirrors)
	}
}

// RenderTree lays out root to the surface bounds and paints it with every
// mirror at its natural frame. It is a static render without the geometry
// protocol; apps use App.Render.
func RenderTree(s Surface, root *Element) {
	b := s.Bounds()
	root.Calculate(b.Width, b.Height)
	paintTree(s, root, inheritedStyle{}, false)
}
