// Package lanes tracks the filled main-axis extent of each lane in a
// multi-lane grid.
//
// A [Tracker] owns one rectangle per lane. The cross-axis bounds of every
// rectangle are fixed by [Tracker.Set] when the grid is reset; afterwards
// only the main-axis edges move, through shifts, growth, and shrinkage as
// items are attached to and detached from the grid.
//
// The aggregate queries separate "every lane reaches here" (the inner edges)
// from "at least one lane reaches here" (the outer edges), which is what a
// host needs to decide whether more content must be laid out when lanes fill
// unevenly.
package lanes
