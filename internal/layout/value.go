package layout

import "strconv"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto  Unit = iota // Size determined by the item's own content
	UnitFixed             // Absolute terminal cells
	UnitFill              // All space the container offers on that axis
)

// Value represents a requested item dimension that can be fixed, fill, or auto.
type Value struct {
	Amount int
	Unit   Unit
}

// Auto returns a Value that the item computes from its content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Fill returns a Value that takes all the space available on its axis.
func Fill() Value {
	return Value{Unit: UnitFill}
}

// Resolve computes the actual integer value given available space.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitFill:
		return available
	case UnitAuto:
		return fallback
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return strconv.Itoa(v.Amount)
	case UnitFill:
		return "fill"
	default:
		return "auto"
	}
}
