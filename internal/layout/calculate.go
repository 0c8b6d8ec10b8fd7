package layout

// Calculate lays out the tree rooted at root inside a viewport of
// availableWidth x availableHeight placed at the origin. Every node gets a
// fresh absolute Layout; nothing from a previous pass is reused.
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}

	style := root.LayoutStyle()
	width := style.Width.Resolve(availableWidth, availableWidth)
	height := style.Height.Resolve(availableHeight, availableHeight)

	calculateNode(root, NewRect(0, 0, width, height))
}

// calculateNode computes the layout of node inside box, the border box
// its parent allocated (margin already removed).
func calculateNode(node Layoutable, box Rect) {
	style := node.LayoutStyle()

	box.Width = clamp(box.Width,
		style.MinWidth.Resolve(box.Width, 0),
		style.MaxWidth.Resolve(box.Width, box.Width))
	box.Height = clamp(box.Height,
		style.MinHeight.Resolve(box.Height, 0),
		style.MaxHeight.Resolve(box.Height, box.Height))
	box.Width = max(box.Width, 0)
	box.Height = max(box.Height, 0)

	content := box.Inset(style.Padding)
	content.Width = max(content.Width, 0)
	content.Height = max(content.Height, 0)

	if len(node.LayoutChildren()) > 0 {
		layoutChildren(node, style, content)
	}

	node.SetLayout(Layout{Rect: box, ContentRect: content})
}

// clamp restricts v to [minVal, maxVal]. If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// CalculateIn lays out the tree rooted at root with its border box fixed
// to box, regardless of root's own size style.
func CalculateIn(root Layoutable, box Rect) {
	if root == nil {
		return
	}
	calculateNode(root, box)
}
