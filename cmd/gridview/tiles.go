package main

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/lanegrid"
)

// tile is a numbered box whose main-axis size varies with its position.
type tile struct {
	label    string
	params   lanegrid.LayoutParams
	measured lanegrid.Size
	bounds   lanegrid.Rect
}

func (t *tile) Params() lanegrid.LayoutParams { return t.params }

func (t *tile) Measure(width, height lanegrid.MeasureSpec) {
	// Content is the label inside a one-cell border.
	t.measured = lanegrid.Size{
		Width:  width.Resolve(runewidth.StringWidth(t.label) + 2),
		Height: height.Resolve(3),
	}
}

func (t *tile) MeasuredSize() lanegrid.Size { return t.measured }

func (t *tile) Bounds() lanegrid.Rect { return t.bounds }

func (t *tile) Layout(r lanegrid.Rect) { t.bounds = r }

func (t *tile) Offset(dx, dy int) { t.bounds = t.bounds.Translate(dx, dy) }

// tileSet is the demo's adapter. Tiles are created on first use and kept,
// so a tile scrolled back into view is only moved.
type tileSet struct {
	tiles       []*tile
	orientation lanegrid.Orientation
}

func newTileSet(count int, o lanegrid.Orientation) *tileSet {
	return &tileSet{
		tiles:       make([]*tile, count),
		orientation: o,
	}
}

// setOrientation drops every tile so they are rebuilt with params for o.
func (s *tileSet) setOrientation(o lanegrid.Orientation) {
	s.orientation = o
	clear(s.tiles)
}

func (s *tileSet) Count() int {
	return len(s.tiles)
}

func (s *tileSet) Item(position int) lanegrid.Item {
	if t := s.tiles[position]; t != nil {
		return t
	}

	extent := 3 + (position*7)%5
	if s.orientation == lanegrid.Horizontal {
		extent *= 3
	}
	// Every seventh tile sizes itself across the lane instead of filling it.
	cross := lanegrid.Fill()
	if position%7 == 6 {
		cross = lanegrid.Auto()
	}

	t := &tile{label: "#" + strconv.Itoa(position)}
	if s.orientation == lanegrid.Horizontal {
		t.params = lanegrid.LayoutParams{Width: lanegrid.Fixed(extent), Height: cross}
	} else {
		t.params = lanegrid.LayoutParams{Width: cross, Height: lanegrid.Fixed(extent)}
	}
	s.tiles[position] = t
	return t
}
