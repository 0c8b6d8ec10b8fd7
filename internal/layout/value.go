package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Sized from content or flex
	UnitFixed               // Absolute cells
	UnitPercent             // Percentage of the parent's available space
)

// Value is a dimension that is fixed, a percentage, or automatic.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value resolved from intrinsic content size or flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value of exactly n cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value on a 0-100 scale of the available space.
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve returns the concrete size for the given available space.
// Auto values resolve to fallback.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// IsAuto returns true if this value is computed from content or flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
