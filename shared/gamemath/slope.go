package gamemath

// Slope direction tags carried over from level data.
const (
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)

// SlopeForTag returns the line (m, b) of a diagonal ramp tile of size w x h in
// a Y-up world, relative to the tile's lower-left corner. ok is false for
// unknown tags.
func SlopeForTag(tag string, w, h float64) (m, b float64, ok bool) {
	if w == 0 {
		return 0, 0, false
	}
	switch tag {
	case Slope45UpRight:
		// Surface rises from the bottom-left to the top-right.
		return h / w, 0, true
	case Slope45UpLeft:
		// Surface falls from the top-left to the bottom-right.
		return -h / w, h, true
	}
	return 0, 0, false
}
