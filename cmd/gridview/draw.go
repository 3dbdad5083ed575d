package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/lanegrid"
)

var (
	statusStyle = tcell.StyleDefault.Reverse(true)
	tileStyles  = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorTeal),
		tcell.StyleDefault.Foreground(tcell.ColorOlive),
		tcell.StyleDefault.Foreground(tcell.ColorPurple),
		tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
)

// draw renders the status line on row 0 and the grid below it.
func (d *demo) draw() {
	d.screen.Clear()
	w, _ := d.screen.Size()

	clip := d.viewport.ContentBounds()
	for _, p := range d.viewport.Visible() {
		if !p.Bounds.Intersects(clip) {
			continue
		}
		style := tileStyles[d.grid.LaneForPosition(p.Position)%len(tileStyles)]
		d.drawTile(p.Bounds, clip, d.tiles.tiles[p.Position].label, style)
	}

	status := fmt.Sprintf(" %s lanes=%d size=%d positions %d..%d of %d edges [%d %d %d %d]  o:orient +/-:lanes q:quit",
		d.grid.Orientation(), d.grid.LaneCount(), d.grid.LaneSize(),
		d.viewport.FirstPosition(), d.viewport.LastPosition(), d.tiles.Count(),
		d.grid.OuterStartEdge(), d.grid.InnerStartEdge(), d.grid.InnerEndEdge(), d.grid.OuterEndEdge())
	d.drawText(0, 0, runewidth.FillRight(runewidth.Truncate(status, w, "…"), w), statusStyle)

	d.screen.Show()
}

// drawTile draws a single-line box with the label in its top-left corner.
// Cells outside clip are skipped; viewport row y is screen row y+1.
func (d *demo) drawTile(r, clip lanegrid.Rect, label string, style tcell.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	set := func(x, y int, ch rune) {
		if clip.Contains(x, y) {
			d.screen.SetContent(x, y+1, ch, nil, style)
		}
	}

	left, right := r.Left(), r.Right()-1
	top, bottom := r.Top(), r.Bottom()-1

	set(left, top, '┌')
	set(right, top, '┐')
	set(left, bottom, '└')
	set(right, bottom, '┘')
	for x := left + 1; x < right; x++ {
		set(x, top, '─')
		set(x, bottom, '─')
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, '│')
		set(right, y, '│')
	}

	if r.Height < 3 {
		return
	}
	x := left + 1
	for _, ch := range runewidth.Truncate(label, r.Width-2, "") {
		set(x, top+1, ch)
		x += runewidth.RuneWidth(ch)
	}
}

func (d *demo) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		d.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
