package layout

import "fmt"

// MeasureMode says how a MeasureSpec constrains an item.
type MeasureMode uint8

const (
	ModeUnspecified MeasureMode = iota // Item picks any size
	ModeExactly                        // Item must be exactly Size
	ModeAtMost                         // Item picks a size no larger than Size
)

func (m MeasureMode) String() string {
	switch m {
	case ModeExactly:
		return "exactly"
	case ModeAtMost:
		return "at-most"
	default:
		return "unspecified"
	}
}

// MeasureSpec is the sizing constraint for one axis of an item.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// Exactly returns a spec that forces the item to n cells.
func Exactly(n int) MeasureSpec {
	return MeasureSpec{Mode: ModeExactly, Size: n}
}

// AtMost returns a spec that lets the item self-size up to n cells.
func AtMost(n int) MeasureSpec {
	return MeasureSpec{Mode: ModeAtMost, Size: n}
}

// Unconstrained returns a spec that places no bound on the item.
func Unconstrained() MeasureSpec {
	return MeasureSpec{Mode: ModeUnspecified}
}

// Resolve reconciles the size an item wants with the constraint.
// Negative results are clamped to zero.
func (m MeasureSpec) Resolve(desired int) int {
	var size int
	switch m.Mode {
	case ModeExactly:
		size = m.Size
	case ModeAtMost:
		size = min(desired, m.Size)
	default:
		size = desired
	}
	return max(size, 0)
}

func (m MeasureSpec) String() string {
	if m.Mode == ModeUnspecified {
		return m.Mode.String()
	}
	return fmt.Sprintf("%s %d", m.Mode, m.Size)
}
