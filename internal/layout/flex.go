package layout

// flexItem is the per-child scratch state of one layoutChildren call.
type flexItem struct {
	node        Layoutable
	style       Style
	mainMargin  int
	crossMargin int
	baseSize    int // content size on the main axis, margin excluded
	mainSize    int
	crossSize   int
	mainPos     int
	crossPos    int
}

// layoutChildren runs a single-line flexbox pass over the children of a
// node whose content area is content.
func layoutChildren(node Layoutable, style Style, content Rect) {
	children := node.LayoutChildren()
	isRow := style.Direction == Row

	mainAvail, crossAvail := content.Width, content.Height
	if !isRow {
		mainAvail, crossAvail = crossAvail, mainAvail
	}

	items := make([]flexItem, len(children))
	used := 0
	totalGrow, totalShrink := 0.0, 0.0
	for i, child := range children {
		it := &items[i]
		it.node = child
		it.style = child.LayoutStyle()
		iw, ih := child.IntrinsicSize()
		if isRow {
			it.mainMargin = it.style.Margin.Horizontal()
			it.crossMargin = it.style.Margin.Vertical()
			it.baseSize = it.style.Width.Resolve(mainAvail, iw)
		} else {
			it.mainMargin = it.style.Margin.Vertical()
			it.crossMargin = it.style.Margin.Horizontal()
			it.baseSize = it.style.Height.Resolve(mainAvail, ih)
		}
		it.mainSize = it.baseSize
		used += it.baseSize + it.mainMargin
		totalGrow += it.style.FlexGrow
		totalShrink += it.style.FlexShrink
	}

	gaps := style.Gap * max(0, len(items)-1)
	free := mainAvail - used - gaps

	switch {
	case free > 0 && totalGrow > 0:
		distributeGrow(items, free, totalGrow)
	case free < 0 && totalShrink > 0:
		distributeShrink(items, -free, totalShrink)
	}

	used = 0
	for i := range items {
		it := &items[i]
		if isRow {
			it.mainSize = clamp(it.mainSize,
				it.style.MinWidth.Resolve(mainAvail, 0),
				it.style.MaxWidth.Resolve(mainAvail, mainAvail))
		} else {
			it.mainSize = clamp(it.mainSize,
				it.style.MinHeight.Resolve(mainAvail, 0),
				it.style.MaxHeight.Resolve(mainAvail, mainAvail))
		}
		used += it.mainSize + it.mainMargin
	}
	free = max(0, mainAvail-used-gaps)

	pos, spacing := justify(style.JustifyContent, free, len(items))
	for i := range items {
		items[i].mainPos = pos
		pos += items[i].mainSize + items[i].mainMargin + style.Gap + spacing
	}

	for i := range items {
		it := &items[i]
		iw, ih := it.node.IntrinsicSize()
		crossValue, intrinsicCross := it.style.Height, ih
		if !isRow {
			crossValue, intrinsicCross = it.style.Width, iw
		}
		slot := crossAvail - it.crossMargin
		if style.AlignItems == AlignStretch && crossValue.IsAuto() {
			it.crossSize = slot
			it.crossPos = 0
			continue
		}
		it.crossSize = min(crossValue.Resolve(slot, intrinsicCross), max(slot, 0))
		it.crossPos = alignOffset(style.AlignItems, crossAvail, it.crossSize+it.crossMargin)
	}

	for _, it := range items {
		var box Rect
		if isRow {
			box = Rect{
				X:      content.X + it.mainPos + it.style.Margin.Left,
				Y:      content.Y + it.crossPos + it.style.Margin.Top,
				Width:  it.mainSize,
				Height: it.crossSize,
			}
		} else {
			box = Rect{
				X:      content.X + it.crossPos + it.style.Margin.Left,
				Y:      content.Y + it.mainPos + it.style.Margin.Top,
				Width:  it.crossSize,
				Height: it.mainSize,
			}
		}
		calculateNode(it.node, box)
	}
}

// distributeGrow hands out free space by grow factor. Rounding remainder
// goes to the last growing item so the line fills exactly.
func distributeGrow(items []flexItem, free int, totalGrow float64) {
	given, last := 0, -1
	for i := range items {
		if items[i].style.FlexGrow <= 0 {
			continue
		}
		extra := int(float64(free) * items[i].style.FlexGrow / totalGrow)
		items[i].mainSize += extra
		given += extra
		last = i
	}
	if last >= 0 {
		items[last].mainSize += free - given
	}
}

// distributeShrink removes deficit by shrink factor, never below zero.
func distributeShrink(items []flexItem, deficit int, totalShrink float64) {
	for i := range items {
		if items[i].style.FlexShrink <= 0 {
			continue
		}
		cut := int(float64(deficit) * items[i].style.FlexShrink / totalShrink)
		items[i].mainSize = max(0, items[i].mainSize-cut)
	}
}

// justify returns the starting offset and the extra spacing between items.
func justify(j Justify, free, count int) (offset, spacing int) {
	if free <= 0 || count == 0 {
		return 0, 0
	}
	switch j {
	case JustifyEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if count == 1 {
			return 0, 0
		}
		return 0, free / (count - 1)
	case JustifySpaceEvenly:
		s := free / (count + 1)
		return s, s
	default:
		return 0, 0
	}
}

// alignOffset positions an item of itemSize on a cross axis of crossSize.
func alignOffset(a Align, crossSize, itemSize int) int {
	switch a {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default:
		return 0
	}
}
