// Package lanegrid lays out a two-way scrollable grid of items in
// equal-width lanes.
//
// Users import this single package for the complete public API: the
// geometry types, the [Policy] callback contract, the round-robin [Grid]
// policy, and the [Viewport] host that drives a policy while scrolling.
//
// A host calls [Policy.ResetLayout] whenever geometry changes, then attaches
// items as they scroll into view and detaches them as they leave. The policy
// keeps the filled extent of every lane so the host can ask how far content
// reaches with the four edge queries.
package lanegrid
