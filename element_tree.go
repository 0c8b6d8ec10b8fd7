package matchgeo

import "strconv"

// AddChild appends children to this Element.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		if child == nil {
			continue
		}
		child.parent = e
		e.children = append(e.children, child)
	}
}

// RemoveChild removes child, keeping the order of the remaining children.
// It reports whether child was found.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// RemoveAllChildren detaches every child.
func (e *Element) RemoveAllChildren() {
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
}

// Children returns the child elements in document order.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Walk calls fn for e and its descendants in document order (depth-first,
// pre-order). Returning false from fn skips that element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, child := range e.children {
		child.Walk(fn)
	}
}

// pathSegment is this element's part of a structural path: its index among
// its siblings, or its explicit identity.
func pathSegment(e *Element, index int) string {
	if e.identity != "" {
		return "#" + e.identity
	}
	return strconv.Itoa(index)
}

func childPath(parent string, e *Element, index int) string {
	return parent + "/" + pathSegment(e, index)
}
