package layout

import "fmt"

// Canvas geometry in pixels.
const (
	CanvasWidth  = 4200
	CanvasHeight = 3250
	BufferSize   = 120 // binding strip reserved above or below the boxes
	GutterWidth  = 50  // gap between sibling boxes
	MaxBoxes     = 7
)

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether r has no positive area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Overlaps reports whether r and o share any pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Canvas returns the full output canvas.
func Canvas() Rect {
	return Rect{Width: CanvasWidth, Height: CanvasHeight}
}
