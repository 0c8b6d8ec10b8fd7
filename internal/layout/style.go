package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceEvenly
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStretch Align = iota
	AlignStart
	AlignEnd
	AlignCenter
)

// Style contains the layout properties of one node.
type Style struct {
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            int

	FlexGrow   float64
	FlexShrink float64

	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with auto sizing, row direction, stretched
// cross axis and a shrink factor of 1.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(),
		MaxHeight:  Auto(),
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
	}
}
