package lanegrid

import "fmt"

// GridOption is a functional option for configuring a Grid.
type GridOption func(*Grid) error

// WithLaneCount sets the number of lanes. Default is 3. Must be at least 1.
func WithLaneCount(n int) GridOption {
	return func(g *Grid) error {
		if n < 1 {
			return fmt.Errorf("lane count must be at least 1, got %d", n)
		}
		g.laneCount = n
		return nil
	}
}

// WithOrientation sets the main (scroll) axis. Default is Vertical.
func WithOrientation(o Orientation) GridOption {
	return func(g *Grid) error {
		if o != Vertical && o != Horizontal {
			return fmt.Errorf("unknown orientation %d", o)
		}
		g.orientation = o
		return nil
	}
}

// WithStrictOrdering makes the grid verify that every attach and detach
// touches the correct end of its lane. A call out of order panics.
// Intended for tests and for debugging a host.
func WithStrictOrdering() GridOption {
	return func(g *Grid) error {
		g.strict = true
		return nil
	}
}
