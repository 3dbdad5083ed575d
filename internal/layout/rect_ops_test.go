package layout

import "testing"

func TestRect_TranslateAlongMainAxis(t *testing.T) {
	type tc struct {
		orientation Orientation
		delta       int
		expected    Rect
	}

	tile := RectFromEdges(0, 4, 10, 9)
	tests := map[string]tc{
		"vertical scroll up":      {orientation: Vertical, delta: -4, expected: RectFromEdges(0, 0, 10, 5)},
		"vertical scroll down":    {orientation: Vertical, delta: 3, expected: RectFromEdges(0, 7, 10, 12)},
		"horizontal scroll left":  {orientation: Horizontal, delta: -2, expected: RectFromEdges(-2, 4, 8, 9)},
		"horizontal scroll right": {orientation: Horizontal, delta: 6, expected: RectFromEdges(6, 4, 16, 9)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dx, dy := tt.orientation.Vector(tt.delta)
			if got := tile.Translate(dx, dy); got != tt.expected {
				t.Errorf("Translate(%d, %d) = %s, want %s", dx, dy, got, tt.expected)
			}
		})
	}
}

func TestRect_IntersectContent(t *testing.T) {
	type tc struct {
		tile     Rect
		expected Rect
		visible  bool
	}

	content := NewRect(0, 0, 30, 12).Inset(EdgeAll(1))
	tests := map[string]tc{
		"tile fully inside": {
			tile:     RectFromEdges(1, 2, 10, 6),
			expected: RectFromEdges(1, 2, 10, 6),
			visible:  true,
		},
		"tile straddling the top padding": {
			tile:     RectFromEdges(10, -3, 19, 4),
			expected: RectFromEdges(10, 1, 19, 4),
			visible:  true,
		},
		"tile straddling the bottom padding": {
			tile:     RectFromEdges(19, 8, 28, 15),
			expected: RectFromEdges(19, 8, 28, 11),
			visible:  true,
		},
		"tile ending on the content start": {
			tile:     RectFromEdges(1, -4, 10, 1),
			expected: Rect{},
			visible:  false,
		},
		"tile starting on the content end": {
			tile:     RectFromEdges(1, 11, 10, 14),
			expected: Rect{},
			visible:  false,
		},
		"zero height tile": {
			tile:     RectFromEdges(1, 5, 10, 5),
			expected: Rect{},
			visible:  false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.tile.Intersect(content); got != tt.expected {
				t.Errorf("Intersect() = %s, want %s", got, tt.expected)
			}
			if got := content.Intersect(tt.tile); got != tt.expected {
				t.Errorf("Intersect() reversed = %s, want %s", got, tt.expected)
			}
			if got := tt.tile.Intersects(content); got != tt.visible {
				t.Errorf("Intersects() = %v, want %v", got, tt.visible)
			}
		})
	}
}

func TestEdges_AlongAxis(t *testing.T) {
	type tc struct {
		edges          Edges
		startX, startY int
		sumX, sumY     int
	}

	tests := map[string]tc{
		"all":       {edges: EdgeAll(2), startX: 2, startY: 2, sumX: 4, sumY: 4},
		"symmetric": {edges: EdgeSymmetric(1, 3), startX: 3, startY: 1, sumX: 6, sumY: 2},
		"trbl":      {edges: EdgeTRBL(1, 2, 3, 4), startX: 4, startY: 1, sumX: 6, sumY: 4},
		"none":      {edges: Edges{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.edges.Start(AxisX); got != tt.startX {
				t.Errorf("Start(x) = %d, want %d", got, tt.startX)
			}
			if got := tt.edges.Start(AxisY); got != tt.startY {
				t.Errorf("Start(y) = %d, want %d", got, tt.startY)
			}
			if got := tt.edges.Sum(AxisX); got != tt.sumX || tt.edges.Horizontal() != tt.sumX {
				t.Errorf("Sum(x) = %d, Horizontal() = %d, want %d", got, tt.edges.Horizontal(), tt.sumX)
			}
			if got := tt.edges.Sum(AxisY); got != tt.sumY || tt.edges.Vertical() != tt.sumY {
				t.Errorf("Sum(y) = %d, Vertical() = %d, want %d", got, tt.edges.Vertical(), tt.sumY)
			}
		})
	}
}
