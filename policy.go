package lanegrid

// Flow is the direction content changes in relative to scrolling.
type Flow uint8

const (
	FlowForward  Flow = iota // Content appended ahead; items leave at the leading edge
	FlowBackward             // Content revealed behind; items leave at the trailing edge
)

func (f Flow) String() string {
	if f == FlowBackward {
		return "backward"
	}
	return "forward"
}

// LayoutParams holds the size an item requests on each axis.
type LayoutParams struct {
	Width  Value
	Height Value
}

// Along returns the requested dimension on the given axis.
func (p LayoutParams) Along(a Axis) Value {
	if a == AxisX {
		return p.Width
	}
	return p.Height
}

// Item is anything a Policy can measure and place.
type Item interface {
	// Params returns the size the item requests on each axis.
	Params() LayoutParams

	// Measure asks the item to pick its size within the given constraints.
	Measure(width, height MeasureSpec)

	// MeasuredSize returns the size chosen by the last Measure call.
	MeasuredSize() Size

	// Bounds returns the item's current placement.
	Bounds() Rect

	// Layout assigns the item's placement.
	Layout(r Rect)

	// Offset translates the item's placement without changing its size.
	Offset(dx, dy int)
}

// Policy is the callback set a scrolling host drives. Implementations decide
// which lane an item belongs to and track how far content extends in each
// lane; the host decides which items are visible and when.
type Policy interface {
	// SetBounds records the container size and padding used by ResetLayout.
	SetBounds(size Size, padding Edges)

	// Orientation returns the main (scroll) axis.
	Orientation() Orientation

	// ResetLayout reinitializes every lane to zero extent at startOffset.
	ResetLayout(startOffset int)

	// OffsetLayout translates all tracked content by delta along the main axis.
	OffsetLayout(delta int)

	OuterStartEdge() int
	InnerStartEdge() int
	InnerEndEdge() int
	OuterEndEdge() int

	// MeasureSpecFor returns the sizing constraint for one axis of an item.
	MeasureSpecFor(axis Axis, item Item, position int, params LayoutParams) MeasureSpec

	// AttachChildToLayout places a measured item at the flow side of its lane.
	AttachChildToLayout(item Item, position int, flow Flow, needsLayout bool)

	// DetachChildFromLayout releases the space an item held in its lane.
	DetachChildFromLayout(item Item, position int, flow Flow)
}
