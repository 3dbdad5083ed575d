package layout

import "testing"

func TestRectFromEdges(t *testing.T) {
	type tc struct {
		left, top, right, bottom int
		expected                 Rect
	}

	tests := map[string]tc{
		"standard": {
			left: 5, top: 10, right: 25, bottom: 25,
			expected: NewRect(5, 10, 20, 15),
		},
		"zero extent lane": {
			left: 100, top: 0, right: 200, bottom: 0,
			expected: NewRect(100, 0, 100, 0),
		},
		"negative origin": {
			left: -30, top: -5, right: 0, bottom: 5,
			expected: NewRect(-30, -5, 30, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := RectFromEdges(tt.left, tt.top, tt.right, tt.bottom)
			if got != tt.expected {
				t.Errorf("RectFromEdges() = %+v, want %+v", got, tt.expected)
			}
			if got.Left() != tt.left || got.Top() != tt.top || got.Right() != tt.right || got.Bottom() != tt.bottom {
				t.Errorf("edges = %s, want (%d,%d,%d,%d)", got, tt.left, tt.top, tt.right, tt.bottom)
			}
		})
	}
}

func TestRect_IsEmpty(t *testing.T) {
	type tc struct {
		rect    Rect
		isEmpty bool
	}

	tests := map[string]tc{
		"standard rect": {
			rect:    NewRect(0, 0, 10, 5),
			isEmpty: false,
		},
		"zero height lane": {
			rect:    RectFromEdges(0, 0, 100, 0),
			isEmpty: true,
		},
		"negative width": {
			rect:    NewRect(0, 0, -5, 10),
			isEmpty: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.isEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.isEmpty)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y     int
		contains bool
	}

	r := NewRect(10, 20, 30, 40)

	tests := map[string]tc{
		"point inside":                  {x: 20, y: 30, contains: true},
		"top-left corner (inside)":      {x: 10, y: 20, contains: true},
		"right edge (outside)":          {x: 40, y: 30, contains: false},
		"bottom edge (outside)":         {x: 20, y: 60, contains: false},
		"bottom-right corner (outside)": {x: 40, y: 60, contains: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.contains {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.contains)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect     Rect
		edges    Edges
		expected Rect
	}

	tests := map[string]tc{
		"uniform padding": {
			rect:     NewRect(0, 0, 100, 50),
			edges:    EdgeAll(2),
			expected: NewRect(2, 2, 96, 46),
		},
		"asymmetric padding": {
			rect:     NewRect(0, 0, 100, 50),
			edges:    EdgeTRBL(1, 2, 3, 4),
			expected: NewRect(4, 1, 94, 46),
		},
		"no padding": {
			rect:     NewRect(5, 5, 10, 10),
			edges:    Edges{},
			expected: NewRect(5, 5, 10, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.expected {
				t.Errorf("Inset(%+v) = %+v, want %+v", tt.edges, got, tt.expected)
			}
		})
	}
}

func TestRect_String(t *testing.T) {
	if got := NewRect(0, 50, 100, 30).String(); got != "(0,50,100,80)" {
		t.Errorf("String() = %q, want %q", got, "(0,50,100,80)")
	}
}

func TestRect_Size(t *testing.T) {
	if got := NewRect(3, 4, 26, 5).Size(); got != (Size{Width: 26, Height: 5}) {
		t.Errorf("Size() = %+v, want {26 5}", got)
	}
}
