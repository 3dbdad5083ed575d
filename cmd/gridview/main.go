// Package main is a terminal demo of a lanegrid Viewport.
//
// Usage:
//
//	gridview [-lanes n] [-items n] [-horizontal] [-debug path]
//
// Keys: arrows or h/j/k/l scroll by one cell, PgUp/PgDn by a page,
// Home/End (g/G) jump to either end, o toggles orientation, +/- change the
// lane count, q or Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/lanegrid"
	"github.com/grindlemire/lanegrid/internal/debug"
)

func main() {
	lanes := flag.Int("lanes", lanegrid.DefaultLaneCount, "number of lanes")
	items := flag.Int("items", 200, "number of tiles")
	horizontal := flag.Bool("horizontal", false, "scroll horizontally")
	debugPath := flag.String("debug", "", "append debug log to this file")
	flag.Parse()

	if err := run(*lanes, *items, *horizontal, *debugPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(lanes, items int, horizontal bool, debugPath string) error {
	if debugPath != "" {
		if err := debug.Init(debugPath); err != nil {
			return err
		}
		defer debug.Close()
	}
	if items < 0 {
		return fmt.Errorf("items must not be negative, got %d", items)
	}

	orientation := lanegrid.Vertical
	if horizontal {
		orientation = lanegrid.Horizontal
	}

	grid, err := lanegrid.NewGrid(lanegrid.WithLaneCount(lanes), lanegrid.WithOrientation(orientation))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	d := &demo{
		screen: screen,
		grid:   grid,
		tiles:  newTileSet(items, orientation),
	}
	d.viewport = lanegrid.NewViewport(grid, d.tiles)
	d.resize()
	d.loop()
	return nil
}

// demo owns the screen and the viewport it draws.
type demo struct {
	screen   tcell.Screen
	grid     *lanegrid.Grid
	tiles    *tileSet
	viewport *lanegrid.Viewport
}

func (d *demo) loop() {
	for {
		d.draw()

		switch ev := d.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			d.screen.Sync()
			d.resize()
		case *tcell.EventKey:
			if quit := d.handleKey(ev); quit {
				return
			}
		}
	}
}

// resize gives the viewport every row but the status line.
func (d *demo) resize() {
	w, h := d.screen.Size()
	d.viewport.SetSize(w, max(h-1, 0))
}

func (d *demo) handleKey(ev *tcell.EventKey) bool {
	page := d.viewport.Size().Along(d.grid.Orientation().MainAxis())

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyUp, tcell.KeyLeft:
		d.viewport.ScrollBy(-1)
	case tcell.KeyDown, tcell.KeyRight:
		d.viewport.ScrollBy(1)
	case tcell.KeyPgUp:
		d.viewport.ScrollBy(-page)
	case tcell.KeyPgDn:
		d.viewport.ScrollBy(page)
	case tcell.KeyHome:
		d.viewport.JumpTo(0)
	case tcell.KeyEnd:
		d.viewport.JumpTo(d.tiles.Count() - 1)
	case tcell.KeyRune:
		return d.handleRune(ev.Rune())
	}
	return false
}

func (d *demo) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case 'k', 'h':
		d.viewport.ScrollBy(-1)
	case 'j', 'l':
		d.viewport.ScrollBy(1)
	case 'g':
		d.viewport.JumpTo(0)
	case 'G':
		d.viewport.JumpTo(d.tiles.Count() - 1)
	case 'o':
		next := lanegrid.Horizontal
		if d.grid.Orientation() == lanegrid.Horizontal {
			next = lanegrid.Vertical
		}
		d.grid.SetOrientation(next)
		d.tiles.setOrientation(next)
		d.viewport.Layout()
	case '+', '=':
		d.setLaneCount(d.grid.LaneCount() + 1)
	case '-':
		d.setLaneCount(d.grid.LaneCount() - 1)
	}
	return false
}

func (d *demo) setLaneCount(n int) {
	if err := d.grid.SetLaneCount(n); err != nil {
		debug.Log("gridview: %v", err)
		return
	}
	d.viewport.Layout()
}
