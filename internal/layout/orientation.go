package layout

// Axis names one of the two screen axes.
type Axis uint8

const (
	AxisX Axis = iota // Horizontal axis (widths, left/right)
	AxisY             // Vertical axis (heights, top/bottom)
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Orientation specifies the main (scroll) axis of a grid. Lanes partition
// the other axis, the cross axis.
type Orientation uint8

const (
	Vertical   Orientation = iota // Content scrolls top-to-bottom, lanes are columns
	Horizontal                    // Content scrolls left-to-right, lanes are rows
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// MainAxis returns the scroll axis.
func (o Orientation) MainAxis() Axis {
	if o == Horizontal {
		return AxisX
	}
	return AxisY
}

// CrossAxis returns the lane-partition axis.
func (o Orientation) CrossAxis() Axis {
	if o == Horizontal {
		return AxisY
	}
	return AxisX
}

// MainSpan returns the leading and trailing edges of r along the main axis.
func (o Orientation) MainSpan(r Rect) (start, end int) {
	if o == Horizontal {
		return r.Left(), r.Right()
	}
	return r.Top(), r.Bottom()
}

// CrossSpan returns the start and end edges of r along the cross axis.
func (o Orientation) CrossSpan(r Rect) (start, end int) {
	if o == Horizontal {
		return r.Top(), r.Bottom()
	}
	return r.Left(), r.Right()
}

// Compose builds a Rect from its main-axis and cross-axis spans.
func (o Orientation) Compose(mainStart, mainEnd, crossStart, crossEnd int) Rect {
	if o == Horizontal {
		return RectFromEdges(mainStart, crossStart, mainEnd, crossEnd)
	}
	return RectFromEdges(crossStart, mainStart, crossEnd, mainEnd)
}

// Shift moves r by delta along the main axis.
func (o Orientation) Shift(r Rect, delta int) Rect {
	dx, dy := o.Vector(delta)
	return r.Translate(dx, dy)
}

// Grow extends the trailing main-axis edge of r by n. Negative n pulls the
// trailing edge back.
func (o Orientation) Grow(r Rect, n int) Rect {
	if o == Horizontal {
		r.Width += n
	} else {
		r.Height += n
	}
	return r
}

// Vector returns the (dx, dy) displacement of moving delta along the main axis.
func (o Orientation) Vector(delta int) (dx, dy int) {
	if o == Horizontal {
		return delta, 0
	}
	return 0, delta
}

// MainSize returns the main-axis component of s.
func (o Orientation) MainSize(s Size) int {
	return s.Along(o.MainAxis())
}
