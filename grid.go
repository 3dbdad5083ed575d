package lanegrid

import (
	"fmt"

	"github.com/grindlemire/lanegrid/internal/debug"
	"github.com/grindlemire/lanegrid/internal/lanes"
)

// DefaultLaneCount is the number of lanes a Grid has unless configured.
const DefaultLaneCount = 3

// Grid is a Policy that assigns items to equal-size lanes round-robin by
// position.
type Grid struct {
	tracker     *lanes.Tracker
	laneCount   int
	laneSize    int
	orientation Orientation

	size    Size
	padding Edges

	// strict enables ordering checks; spans is only maintained when set.
	strict bool
	spans  []laneSpan
}

// laneSpan records the first and last positions attached to a lane.
type laneSpan struct {
	first, last int
	empty       bool
}

// NewGrid creates a Grid with the given options.
func NewGrid(opts ...GridOption) (*Grid, error) {
	g := &Grid{
		laneCount:   DefaultLaneCount,
		orientation: Vertical,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("configure grid: %w", err)
		}
	}
	g.tracker = lanes.New(g.orientation, g.laneCount)
	g.clearSpans()
	return g, nil
}

// LaneCount returns the number of lanes.
func (g *Grid) LaneCount() int {
	return g.laneCount
}

// LaneSize returns the cross-axis size of every lane as of the last reset.
func (g *Grid) LaneSize() int {
	return g.laneSize
}

// Orientation returns the main (scroll) axis.
func (g *Grid) Orientation() Orientation {
	return g.orientation
}

// LaneBounds returns a copy of the filled region of a lane.
func (g *Grid) LaneBounds(lane int) Rect {
	return g.tracker.Get(lane)
}

// SetOrientation changes the main axis. Lanes are cleared; call ResetLayout
// before attaching items again.
func (g *Grid) SetOrientation(o Orientation) {
	g.orientation = o
	g.tracker.SetOrientation(o)
	g.clearSpans()
}

// SetLaneCount changes the number of lanes. Lanes are cleared; call
// ResetLayout before attaching items again.
func (g *Grid) SetLaneCount(n int) error {
	if err := WithLaneCount(n)(g); err != nil {
		return err
	}
	g.tracker = lanes.New(g.orientation, g.laneCount)
	g.clearSpans()
	return nil
}

// SetBounds records the container size and padding.
func (g *Grid) SetBounds(size Size, padding Edges) {
	g.size = size
	g.padding = padding
}

// LaneForPosition returns the lane an item position belongs to.
func (g *Grid) LaneForPosition(position int) int {
	return position % g.laneCount
}

// ResetLayout divides the cross axis into lanes and collapses every lane to
// zero extent at startOffset. Remainder cells from the division are left
// unallocated.
func (g *Grid) ResetLayout(startOffset int) {
	o := g.orientation
	cross, main := o.CrossAxis(), o.MainAxis()

	g.laneSize = max(g.size.Along(cross)-g.padding.Sum(cross), 0) / g.laneCount

	crossStart := g.padding.Start(cross)
	mainStart := g.padding.Start(main) + startOffset
	for i := 0; i < g.laneCount; i++ {
		r := o.Compose(mainStart, mainStart, crossStart+i*g.laneSize, crossStart+(i+1)*g.laneSize)
		g.tracker.Set(i, r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	g.clearSpans()

	if debug.Enabled() {
		debug.Log("grid reset: offset=%d laneSize=%d lanes=%s", startOffset, g.laneSize, g.tracker)
	}
}

// OffsetLayout translates every lane by delta along the main axis.
func (g *Grid) OffsetLayout(delta int) {
	g.tracker.Offset(delta)
}

// OuterStartEdge returns the leading edge of the lane that reaches furthest back.
func (g *Grid) OuterStartEdge() int {
	return g.tracker.OuterStartEdge()
}

// InnerStartEdge returns the leading edge past which every lane has content.
func (g *Grid) InnerStartEdge() int {
	return g.tracker.InnerStartEdge()
}

// InnerEndEdge returns the trailing edge before which every lane has content.
func (g *Grid) InnerEndEdge() int {
	return g.tracker.InnerEndEdge()
}

// OuterEndEdge returns the trailing edge of the lane that reaches furthest ahead.
func (g *Grid) OuterEndEdge() int {
	return g.tracker.OuterEndEdge()
}

// MeasureSpecFor constrains the cross axis to the lane size, or to at most
// the lane size when the item sizes itself. On the main axis a fixed request
// is exact, fill takes the container's content extent, and auto is
// unconstrained.
func (g *Grid) MeasureSpecFor(axis Axis, item Item, position int, params LayoutParams) MeasureSpec {
	requested := params.Along(axis)

	if axis == g.orientation.CrossAxis() {
		if requested.IsAuto() {
			return AtMost(g.laneSize)
		}
		return Exactly(g.laneSize)
	}

	if requested.IsAuto() {
		return Unconstrained()
	}
	available := max(g.size.Along(axis)-g.padding.Sum(axis), 0)
	return Exactly(requested.Resolve(available, 0))
}

// AttachChildToLayout places item against the trailing edge of its lane
// (forward) or the leading edge (backward) and grows the lane to cover it.
// When needsLayout is false the item is only translated to its new place.
func (g *Grid) AttachChildToLayout(item Item, position int, flow Flow, needsLayout bool) {
	o := g.orientation
	lane := g.LaneForPosition(position)
	extent := o.MainSize(item.MeasuredSize())

	if g.strict {
		g.checkAttach(lane, position, flow)
	}

	laneRect := g.tracker.Get(lane)
	lead, trail := o.MainSpan(laneRect)
	crossStart, crossEnd := o.CrossSpan(laneRect)

	start := trail
	if flow == FlowBackward {
		start = lead - extent
	}
	placed := o.Compose(start, start+extent, crossStart, crossEnd)

	if needsLayout {
		item.Layout(placed)
	} else {
		prev := item.Bounds()
		item.Offset(placed.X-prev.X, placed.Y-prev.Y)
	}

	if flow == FlowBackward {
		g.tracker.OffsetLane(lane, -extent)
	}
	g.tracker.IncreaseExtentBy(lane, extent)
}

// DetachChildFromLayout releases the space item held at the leading edge of
// its lane (forward) or the trailing edge (backward).
func (g *Grid) DetachChildFromLayout(item Item, position int, flow Flow) {
	lane := g.LaneForPosition(position)
	extent := g.orientation.MainSize(item.Bounds().Size())

	if g.strict {
		g.checkDetach(lane, position, flow)
	}

	if flow == FlowForward {
		g.tracker.OffsetLane(lane, extent)
	}
	g.tracker.ReduceExtentBy(lane, extent)
}

func (g *Grid) clearSpans() {
	if !g.strict {
		return
	}
	g.spans = make([]laneSpan, g.laneCount)
	for i := range g.spans {
		g.spans[i].empty = true
	}
}

func (g *Grid) checkAttach(lane, position int, flow Flow) {
	s := &g.spans[lane]
	if s.empty {
		*s = laneSpan{first: position, last: position}
		return
	}

	switch flow {
	case FlowForward:
		if position != s.last+g.laneCount {
			g.outOfOrder("attach", position, lane, flow, s.last+g.laneCount)
		}
		s.last = position
	case FlowBackward:
		if position != s.first-g.laneCount {
			g.outOfOrder("attach", position, lane, flow, s.first-g.laneCount)
		}
		s.first = position
	}
}

func (g *Grid) checkDetach(lane, position int, flow Flow) {
	s := &g.spans[lane]
	if s.empty {
		panic(fmt.Sprintf("lanegrid: %s detach of position %d from empty lane %d", flow, position, lane))
	}

	switch flow {
	case FlowForward:
		if position != s.first {
			g.outOfOrder("detach", position, lane, flow, s.first)
		}
		s.first += g.laneCount
	case FlowBackward:
		if position != s.last {
			g.outOfOrder("detach", position, lane, flow, s.last)
		}
		s.last -= g.laneCount
	}
	if s.first > s.last {
		s.empty = true
	}
}

func (g *Grid) outOfOrder(op string, position, lane int, flow Flow, want int) {
	s := g.spans[lane]
	panic(fmt.Sprintf("lanegrid: %s %s of position %d in lane %d out of order: lane holds %d..%d, expected position %d",
		flow, op, position, lane, s.first, s.last, want))
}

var _ Policy = (*Grid)(nil)
