package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Edge names the side of a rectangle a cut's primary piece is anchored to.
type Edge int

const (
	Left Edge = iota
	Right
	Top
	Bottom
)

var edgeNames = [...]string{Left: "left", Right: "right", Top: "top", Bottom: "bottom"}

func (e Edge) String() string {
	if e < Left || e > Bottom {
		return fmt.Sprintf("Edge(%d)", int(e))
	}
	return edgeNames[e]
}

// ParseEdge converts "left", "right", "top" or "bottom" to an Edge.
func ParseEdge(s string) (Edge, error) {
	for i, name := range edgeNames {
		if strings.EqualFold(s, name) {
			return Edge(i), nil
		}
	}
	return 0, fmt.Errorf("unknown edge %q", s)
}

// vertical reports whether the cut line is vertical, i.e. the primary
// thickness is measured along the x axis.
func (e Edge) vertical() bool { return e == Left || e == Right }

// RatioKind selects how a Ratio value is interpreted.
type RatioKind int

const (
	KindPct    RatioKind = iota // fraction of the rectangle's extent along the cut axis
	KindAspect                  // width/height of the primary piece
)

// Ratio sizes the primary piece of a cut.
type Ratio struct {
	Kind  RatioKind
	Value float64
}

// Pct returns a fractional ratio (0.4818 means 48.18%).
func Pct(v float64) Ratio { return Ratio{Kind: KindPct, Value: v} }

// Aspect returns an aspect-derived ratio.
func Aspect(v float64) Ratio { return Ratio{Kind: KindAspect, Value: v} }

func (r Ratio) String() string {
	v := strconv.FormatFloat(r.Value, 'g', -1, 64)
	if r.Kind == KindAspect {
		return "aspect " + v
	}
	return "pct " + v
}

// Cut splits the rectangle at index Box of the working list.
type Cut struct {
	Box   int
	Edge  Edge
	Ratio Ratio
}

// String formats c in the syntax accepted by ParseCut.
func (c Cut) String() string {
	return fmt.Sprintf("%d %s %s", c.Box, c.Edge, c.Ratio)
}

// thickness returns the primary piece's extent along the cut axis.
func (c Cut) thickness(r Rect) int {
	if c.Edge.vertical() {
		if c.Ratio.Kind == KindAspect {
			return round(float64(r.Height) * c.Ratio.Value)
		}
		return round(float64(r.Width) * c.Ratio.Value)
	}
	if c.Ratio.Kind == KindAspect {
		return round(float64(r.Width) / c.Ratio.Value)
	}
	return round(float64(r.Height) * c.Ratio.Value)
}

// split divides r into the primary piece anchored at c.Edge and the
// remainder beyond the gutter.
func (c Cut) split(r Rect) (primary, remainder Rect) {
	t := c.thickness(r)
	switch c.Edge {
	case Left:
		primary = Rect{X: r.X, Y: r.Y, Width: t, Height: r.Height}
		remainder = Rect{X: r.X + t + GutterWidth, Y: r.Y, Width: r.Width - t - GutterWidth, Height: r.Height}
	case Right:
		primary = Rect{X: r.X + r.Width - t, Y: r.Y, Width: t, Height: r.Height}
		remainder = Rect{X: r.X, Y: r.Y, Width: r.Width - t - GutterWidth, Height: r.Height}
	case Top:
		primary = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: t}
		remainder = Rect{X: r.X, Y: r.Y + t + GutterWidth, Width: r.Width, Height: r.Height - t - GutterWidth}
	default:
		primary = Rect{X: r.X, Y: r.Y + r.Height - t, Width: r.Width, Height: t}
		remainder = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height - t - GutterWidth}
	}
	return primary, remainder
}

// round matches JavaScript's Math.round for the non-negative values used here.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
