package lanegrid

import (
	"slices"

	"github.com/grindlemire/lanegrid/internal/debug"
)

// Adapter supplies the items a Viewport shows, by position.
type Adapter interface {
	// Count returns the number of positions.
	Count() int

	// Item returns the item for a position. It may return an item that was
	// laid out before; the Viewport then only moves it.
	Item(position int) Item
}

// LaneAssigner is implemented by policies that place positions into lanes
// round-robin. The Viewport uses it to start a full layout at the first
// lane so that rows line up.
type LaneAssigner interface {
	LaneForPosition(position int) int
}

// Placed is an attached item with its position and placement.
type Placed struct {
	Position int
	Bounds   Rect
}

// Viewport is a scrolling host for a Policy. It keeps a contiguous run of
// positions attached, enough to cover the visible area, and attaches or
// detaches items at either end as content scrolls.
type Viewport struct {
	policy  Policy
	adapter Adapter

	size    Size
	padding Edges

	// items holds the attached items for positions first..first+len(items)-1.
	first int
	items []Item
}

// NewViewport creates a Viewport with zero size. Call SetSize to lay it out.
func NewViewport(policy Policy, adapter Adapter) *Viewport {
	return &Viewport{
		policy:  policy,
		adapter: adapter,
	}
}

// Size returns the container size.
func (v *Viewport) Size() Size {
	return v.size
}

// SetSize changes the container size and lays out again.
func (v *Viewport) SetSize(width, height int) {
	v.size = Size{Width: width, Height: height}
	v.policy.SetBounds(v.size, v.padding)
	v.Layout()
}

// SetPadding changes the container padding and lays out again.
func (v *Viewport) SetPadding(padding Edges) {
	v.padding = padding
	v.policy.SetBounds(v.size, v.padding)
	v.Layout()
}

// ContentBounds returns the area inside the padding that items are laid
// out in.
func (v *Viewport) ContentBounds() Rect {
	return NewRect(0, 0, v.size.Width, v.size.Height).Inset(v.padding)
}

// FirstPosition returns the first attached position, or -1 if none.
func (v *Viewport) FirstPosition() int {
	if len(v.items) == 0 {
		return -1
	}
	return v.first
}

// LastPosition returns the last attached position, or -1 if none.
func (v *Viewport) LastPosition() int {
	if len(v.items) == 0 {
		return -1
	}
	return v.first + len(v.items) - 1
}

// Visible returns the attached items in position order.
func (v *Viewport) Visible() []Placed {
	placed := make([]Placed, len(v.items))
	for i, item := range v.items {
		placed[i] = Placed{Position: v.first + i, Bounds: item.Bounds()}
	}
	return placed
}

// JumpTo lays out again starting from the row that holds position.
func (v *Viewport) JumpTo(position int) {
	v.first = max(position, 0)
	v.Layout()
}

// Layout discards all placement and fills the visible area starting from
// the current first position. Geometry or policy changes require it.
func (v *Viewport) Layout() {
	v.items = v.items[:0]
	if count := v.adapter.Count(); v.first >= count {
		v.first = max(count-1, 0)
	}
	if la, ok := v.policy.(LaneAssigner); ok {
		v.first -= la.LaneForPosition(v.first)
	}

	start, end := v.mainRange()
	v.policy.ResetLayout(0)
	v.fillForward(end)

	// Close a gap left at the end of the content by pulling earlier items in.
	if gap := end - v.policy.OuterEndEdge(); gap > 0 && v.first > 0 {
		v.ScrollBy(-gap)
	}

	debug.Log("viewport layout: size=%dx%d range=[%d,%d) positions=%d..%d",
		v.size.Width, v.size.Height, start, end, v.FirstPosition(), v.LastPosition())
}

// ScrollBy scrolls forward by delta cells, or backward when delta is
// negative, and returns the distance actually scrolled. Scrolling stops at
// either end of the content.
func (v *Viewport) ScrollBy(delta int) int {
	if delta == 0 || len(v.items) == 0 {
		return 0
	}

	start, end := v.mainRange()
	if delta > 0 {
		v.fillForward(end + delta)
		if v.next() >= v.adapter.Count() {
			delta = min(delta, max(v.policy.OuterEndEdge()-end, 0))
		}
	} else {
		v.fillBackward(start + delta)
		if v.first == 0 {
			delta = max(delta, min(v.policy.OuterStartEdge()-start, 0))
		}
	}
	if delta == 0 {
		return 0
	}

	v.offsetChildren(-delta)
	if delta > 0 {
		v.recycleLeading(start)
		v.fillForward(end)
	} else {
		v.recycleTrailing(end)
		v.fillBackward(start)
	}

	debug.Log("viewport scroll: delta=%d positions=%d..%d edges=[%d %d %d %d]", delta,
		v.FirstPosition(), v.LastPosition(),
		v.policy.OuterStartEdge(), v.policy.InnerStartEdge(), v.policy.InnerEndEdge(), v.policy.OuterEndEdge())
	return delta
}

// mainRange returns the visible span along the main axis.
func (v *Viewport) mainRange() (start, end int) {
	return v.policy.Orientation().MainSpan(v.ContentBounds())
}

// next returns the position after the last attached one.
func (v *Viewport) next() int {
	return v.first + len(v.items)
}

// fillForward attaches positions after the last one until every lane
// reaches limit or the content runs out.
func (v *Viewport) fillForward(limit int) {
	count := v.adapter.Count()
	for pos := v.next(); pos < count && v.policy.InnerEndEdge() < limit; pos++ {
		v.items = append(v.items, v.attach(pos, FlowForward))
	}
}

// fillBackward attaches positions before the first one until every lane
// reaches back to limit or position 0 is attached.
func (v *Viewport) fillBackward(limit int) {
	for v.first > 0 && v.policy.InnerStartEdge() > limit {
		v.first--
		v.items = slices.Insert(v.items, 0, v.attach(v.first, FlowBackward))
	}
}

func (v *Viewport) attach(position int, flow Flow) Item {
	item := v.adapter.Item(position)
	params := item.Params()
	item.Measure(
		v.policy.MeasureSpecFor(AxisX, item, position, params),
		v.policy.MeasureSpecFor(AxisY, item, position, params),
	)
	needsLayout := item.Bounds().Size() != item.MeasuredSize()
	v.policy.AttachChildToLayout(item, position, flow, needsLayout)
	return item
}

// recycleLeading detaches items from the front while they lie entirely
// before start.
func (v *Viewport) recycleLeading(start int) {
	o := v.policy.Orientation()
	for len(v.items) > 0 {
		if _, trail := o.MainSpan(v.items[0].Bounds()); trail > start {
			return
		}
		v.policy.DetachChildFromLayout(v.items[0], v.first, FlowForward)
		v.items = slices.Delete(v.items, 0, 1)
		v.first++
	}
}

// recycleTrailing detaches items from the back while they lie entirely at
// or after end.
func (v *Viewport) recycleTrailing(end int) {
	o := v.policy.Orientation()
	for len(v.items) > 0 {
		last := len(v.items) - 1
		if lead, _ := o.MainSpan(v.items[last].Bounds()); lead < end {
			return
		}
		v.policy.DetachChildFromLayout(v.items[last], v.first+last, FlowBackward)
		v.items = v.items[:last]
	}
}

func (v *Viewport) offsetChildren(delta int) {
	dx, dy := v.policy.Orientation().Vector(delta)
	for _, item := range v.items {
		item.Offset(dx, dy)
	}
	v.policy.OffsetLayout(delta)
}
