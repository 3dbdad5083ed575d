package layout

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// Along returns the size component on the given axis.
func (s Size) Along(a Axis) int {
	if a == AxisX {
		return s.Width
	}
	return s.Height
}
