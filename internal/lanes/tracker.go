package lanes

import (
	"fmt"
	"strings"

	"github.com/grindlemire/lanegrid/internal/layout"
)

// Tracker holds the filled region of each lane.
// Lane indices outside [0, LaneCount()) panic.
type Tracker struct {
	orientation layout.Orientation
	lanes       []layout.Rect
}

// New creates a Tracker with laneCount zeroed lanes.
func New(orientation layout.Orientation, laneCount int) *Tracker {
	return &Tracker{
		orientation: orientation,
		lanes:       make([]layout.Rect, laneCount),
	}
}

// LaneCount returns the number of lanes.
func (t *Tracker) LaneCount() int {
	return len(t.lanes)
}

// Orientation returns the main axis the tracker measures extents along.
func (t *Tracker) Orientation() layout.Orientation {
	return t.orientation
}

// SetOrientation changes the main axis and zeroes every lane.
// The lanes must be Set again before use.
func (t *Tracker) SetOrientation(o layout.Orientation) {
	t.orientation = o
	clear(t.lanes)
}

// Set overwrites a lane's rectangle.
func (t *Tracker) Set(lane, left, top, right, bottom int) {
	t.lanes[lane] = layout.RectFromEdges(left, top, right, bottom)
}

// Get returns a copy of a lane's rectangle.
func (t *Tracker) Get(lane int) layout.Rect {
	return t.lanes[lane]
}

// Offset shifts the main-axis edges of every lane by delta.
func (t *Tracker) Offset(delta int) {
	for i := range t.lanes {
		t.lanes[i] = t.orientation.Shift(t.lanes[i], delta)
	}
}

// OffsetLane shifts the main-axis edges of a single lane by delta.
func (t *Tracker) OffsetLane(lane, delta int) {
	t.lanes[lane] = t.orientation.Shift(t.lanes[lane], delta)
}

// IncreaseExtentBy moves a lane's trailing main-axis edge outward by amount.
func (t *Tracker) IncreaseExtentBy(lane, amount int) {
	t.lanes[lane] = t.orientation.Grow(t.lanes[lane], amount)
}

// ReduceExtentBy shrinks a lane's main-axis extent by amount, pulling the
// trailing edge inward. Preceded by OffsetLane(lane, amount) it reclaims the
// space from the leading side instead.
func (t *Tracker) ReduceExtentBy(lane, amount int) {
	t.lanes[lane] = t.orientation.Grow(t.lanes[lane], -amount)
}

// OuterStartEdge returns the smallest leading edge of any lane.
func (t *Tracker) OuterStartEdge() int {
	return t.aggregate(startEdge, lower)
}

// InnerStartEdge returns the largest leading edge of any lane: past it,
// every lane has content.
func (t *Tracker) InnerStartEdge() int {
	return t.aggregate(startEdge, higher)
}

// InnerEndEdge returns the smallest trailing edge of any lane: before it,
// every lane has content.
func (t *Tracker) InnerEndEdge() int {
	return t.aggregate(endEdge, lower)
}

// OuterEndEdge returns the largest trailing edge of any lane.
func (t *Tracker) OuterEndEdge() int {
	return t.aggregate(endEdge, higher)
}

type edgeFunc func(o layout.Orientation, r layout.Rect) int

func startEdge(o layout.Orientation, r layout.Rect) int {
	start, _ := o.MainSpan(r)
	return start
}

func endEdge(o layout.Orientation, r layout.Rect) int {
	_, end := o.MainSpan(r)
	return end
}

func lower(a, b int) int  { return min(a, b) }
func higher(a, b int) int { return max(a, b) }

func (t *Tracker) aggregate(edge edgeFunc, pick func(a, b int) int) int {
	if len(t.lanes) == 0 {
		return 0
	}
	result := edge(t.orientation, t.lanes[0])
	for _, r := range t.lanes[1:] {
		result = pick(result, edge(t.orientation, r))
	}
	return result
}

// String lists every lane rectangle, for debug logging.
func (t *Tracker) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[", t.orientation)
	for i, r := range t.lanes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}
