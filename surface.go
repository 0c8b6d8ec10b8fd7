package matchgeo

// Surface is what a render pass paints onto. All coordinates are absolute
// cells. Buffer implements it for terminals; the snapshot and raylib
// backends implement it for pixels.
type Surface interface {
	Bounds() Rect
	FillRect(r Rect, style Style)
	StrokeRect(r Rect, border BorderStyle, style Style)
	DrawText(x, y int, text string, style Style, clip Rect)
}

// OpKind identifies a DrawOp.
type OpKind uint8

const (
	OpFill OpKind = iota
	OpStroke
	OpText
)

// DrawOp is one recorded paint call. Overlay is set for ops emitted by
// mirror overlays.
type DrawOp struct {
	Kind    OpKind
	Rect    Rect // fill and stroke bounds, text clip
	X, Y    int
	Text    string
	Border  BorderStyle
	Style   Style
	Overlay bool
}

// DisplayList is the ordered paint output of a render pass. It can be
// replayed onto any number of surfaces.
type DisplayList []DrawOp

// Replay paints every op onto s in order.
func (d DisplayList) Replay(s Surface) {
	for _, op := range d {
		switch op.Kind {
		case OpFill:
			s.FillRect(op.Rect, op.Style)
		case OpStroke:
			s.StrokeRect(op.Rect, op.Border, op.Style)
		case OpText:
			s.DrawText(op.X, op.Y, op.Text, op.Style, op.Rect)
		}
	}
}

// recorder is a Surface that appends to a DisplayList.
type recorder struct {
	bounds  Rect
	list    DisplayList
	overlay bool
}

var _ Surface = (*recorder)(nil)

func newRecorder(bounds Rect) *recorder {
	return &recorder{bounds: bounds}
}

func (r *recorder) Bounds() Rect { return r.bounds }

func (r *recorder) FillRect(rect Rect, style Style) {
	r.list = append(r.list, DrawOp{Kind: OpFill, Rect: rect, Style: style, Overlay: r.overlay})
}

func (r *recorder) StrokeRect(rect Rect, border BorderStyle, style Style) {
	r.list = append(r.list, DrawOp{Kind: OpStroke, Rect: rect, Border: border, Style: style, Overlay: r.overlay})
}

func (r *recorder) DrawText(x, y int, text string, style Style, clip Rect) {
	r.list = append(r.list, DrawOp{Kind: OpText, Rect: clip, X: x, Y: y, Text: text, Style: style, Overlay: r.overlay})
}
