// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package lanegrid

import "github.com/grindlemire/lanegrid/internal/layout"

// Orientation specifies the main (scroll) axis of a grid.
type Orientation = layout.Orientation

const (
	Vertical   = layout.Vertical
	Horizontal = layout.Horizontal
)

// Axis names one of the two screen axes.
type Axis = layout.Axis

const (
	AxisX = layout.AxisX
	AxisY = layout.AxisY
)

// Value represents a requested item dimension (fixed, fill, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto  = layout.UnitAuto
	UnitFixed = layout.UnitFixed
	UnitFill  = layout.UnitFill
)

// MeasureSpec is the sizing constraint for one axis of an item.
type MeasureSpec = layout.MeasureSpec

// MeasureMode says how a MeasureSpec constrains an item.
type MeasureMode = layout.MeasureMode

const (
	ModeUnspecified = layout.ModeUnspecified
	ModeExactly     = layout.ModeExactly
	ModeAtMost      = layout.ModeAtMost
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Fixed creates a Value with a fixed cell count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Fill creates a Value that takes all available space on its axis.
func Fill() Value {
	return layout.Fill()
}

// Exactly returns a spec that forces an item to n cells.
func Exactly(n int) MeasureSpec {
	return layout.Exactly(n)
}

// AtMost returns a spec that lets an item self-size up to n cells.
func AtMost(n int) MeasureSpec {
	return layout.AtMost(n)
}

// Unconstrained returns a spec that places no bound on an item.
func Unconstrained() MeasureSpec {
	return layout.Unconstrained()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// RectFromEdges creates a Rect from its left, top, right and bottom edges.
func RectFromEdges(left, top, right, bottom int) Rect {
	return layout.RectFromEdges(left, top, right, bottom)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
