package lanegrid

// testItem is a minimal Item that records how it was placed.
type testItem struct {
	params   LayoutParams
	content  Size // size the item wants when unconstrained
	measured Size
	bounds   Rect

	layouts int
	offsets int
}

// newMeasuredItem returns an item that already has a measured size, for
// driving a Grid directly without a measure pass.
func newMeasuredItem(width, height int) *testItem {
	return &testItem{measured: Size{Width: width, Height: height}}
}

// newTile returns an item with a fixed main-axis size that fills its lane.
func newTile(o Orientation, extent int) *testItem {
	it := &testItem{}
	if o == Horizontal {
		it.params = LayoutParams{Width: Fixed(extent), Height: Fill()}
	} else {
		it.params = LayoutParams{Width: Fill(), Height: Fixed(extent)}
	}
	return it
}

func (it *testItem) Params() LayoutParams {
	return it.params
}

func (it *testItem) Measure(width, height MeasureSpec) {
	it.measured = Size{
		Width:  width.Resolve(it.content.Width),
		Height: height.Resolve(it.content.Height),
	}
}

func (it *testItem) MeasuredSize() Size {
	return it.measured
}

func (it *testItem) Bounds() Rect {
	return it.bounds
}

func (it *testItem) Layout(r Rect) {
	it.bounds = r
	it.layouts++
}

func (it *testItem) Offset(dx, dy int) {
	it.bounds = it.bounds.Translate(dx, dy)
	it.offsets++
}

// testAdapter serves a fixed slice of items and counts lookups.
type testAdapter struct {
	items   []*testItem
	lookups int
}

// newTileAdapter returns count tiles whose main-axis extents cycle through
// extents.
func newTileAdapter(o Orientation, count int, extents ...int) *testAdapter {
	a := &testAdapter{}
	for i := 0; i < count; i++ {
		a.items = append(a.items, newTile(o, extents[i%len(extents)]))
	}
	return a
}

func (a *testAdapter) Count() int {
	return len(a.items)
}

func (a *testAdapter) Item(position int) Item {
	a.lookups++
	return a.items[position]
}
