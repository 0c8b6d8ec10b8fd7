package matchgeo

// TextAlign specifies how text is aligned within its content area.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// Element is a node of the retained tree. It implements Layoutable and
// owns its children directly. Elements are cheap and are rebuilt from the
// root component on every render pass; state that must survive a rebuild
// lives in State values or, for mirrors, in the app keyed by the element's
// structural identity.
type Element struct {
	children []*Element
	parent   *Element

	style  LayoutStyle
	layout LayoutResult

	border      BorderStyle
	borderStyle Style
	background  *Style // nil = transparent

	text         string
	textStyle    Style
	textStyleSet bool
	textAlign    TextAlign

	// hidden elements keep their layout slot but are not drawn.
	hidden bool

	// identity replaces the child index in the element's structural path.
	identity string

	geometry *MatchedGeometry
	scope    *GeometryScope

	component Component
}

var _ Layoutable = (*Element)(nil)

// New creates an Element. By default it sizes to its content.
func New(opts ...Option) *Element {
	e := &Element{style: DefaultLayoutStyle()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultLayoutStyle returns the layout style every new Element starts with.
func DefaultLayoutStyle() LayoutStyle {
	return defaultLayoutStyle()
}

// Text returns the text content.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the text content.
func (e *Element) SetText(text string) {
	e.text = text
}

// Style returns the layout style.
func (e *Element) Style() LayoutStyle {
	return e.style
}

// Border returns the border style.
func (e *Element) Border() BorderStyle {
	return e.border
}

// Hidden reports whether the element is laid out but not drawn.
func (e *Element) Hidden() bool {
	return e.hidden
}

// Identity returns the explicit identity set with WithIdentity.
func (e *Element) Identity() string {
	return e.identity
}

// Geometry returns the matched geometry effect, or nil.
func (e *Element) Geometry() *MatchedGeometry {
	return e.geometry
}

// GeometryScope returns the scope installed on this element, or nil when
// it uses its ancestors' scope.
func (e *Element) GeometryScope() *GeometryScope {
	return e.scope
}

// Component returns the component that rendered this element, if any.
func (e *Element) Component() Component {
	return e.component
}

func (e *Element) isMirror() bool {
	return e.geometry != nil && e.geometry.Role == Mirror
}

func (e *Element) isPublisher() bool {
	return e.geometry != nil && e.geometry.Role == Publisher
}
