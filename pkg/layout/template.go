package layout

import (
	"fmt"

	"github.com/matzehuels/matte/pkg/errors"
)

// Template is a named, ordered set of cuts.
type Template struct {
	Name      string
	Cuts      []Cut
	TopBuffer bool // reserve the binding strip above the boxes instead of below
}

// BoxCount returns the number of boxes the template produces.
func (t Template) BoxCount() int { return len(t.Cuts) + 1 }

// Origin returns the working rectangle partitioning starts from.
func (t Template) Origin() Rect {
	r := Rect{Width: CanvasWidth, Height: CanvasHeight - BufferSize}
	if t.TopBuffer {
		r.Y = BufferSize
	}
	return r
}

// Validate checks that t partitions into MaxBoxes or fewer non-empty,
// non-overlapping boxes inside the canvas.
func (t Template) Validate() error {
	if t.Name == "" {
		return errors.New(errors.ErrCodeInvalidTemplate, "template name cannot be empty")
	}
	if t.BoxCount() > MaxBoxes {
		return errors.New(errors.ErrCodeInvalidTemplate, "%s: %d boxes exceeds the maximum of %d", t.Name, t.BoxCount(), MaxBoxes)
	}
	for i, c := range t.Cuts {
		if err := validateRatio(c.Ratio); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTemplate, err, "%s: cut %d", t.Name, i)
		}
	}
	boxes, err := Partition(t)
	if err != nil {
		return err
	}
	canvas := Canvas()
	for i, b := range boxes {
		if b.Rect.Empty() {
			return errors.New(errors.ErrCodeInvalidTemplate, "%s: %s is degenerate (%s)", t.Name, b.Name(), b.Rect)
		}
		if !canvas.Contains(b.Rect) {
			return errors.New(errors.ErrCodeInvalidTemplate, "%s: %s lies outside the canvas (%s)", t.Name, b.Name(), b.Rect)
		}
		for _, o := range boxes[i+1:] {
			if b.Rect.Overlaps(o.Rect) {
				return errors.New(errors.ErrCodeInvalidTemplate, "%s: %s overlaps %s", t.Name, b.Name(), o.Name())
			}
		}
	}
	return nil
}

func validateRatio(r Ratio) error {
	switch r.Kind {
	case KindPct:
		if r.Value <= 0 || r.Value >= 1 {
			return fmt.Errorf("pct must be between 0 and 1, got %v", r.Value)
		}
	case KindAspect:
		if r.Value <= 0 {
			return fmt.Errorf("aspect must be positive, got %v", r.Value)
		}
	default:
		return fmt.Errorf("unknown ratio kind %d", r.Kind)
	}
	return nil
}
