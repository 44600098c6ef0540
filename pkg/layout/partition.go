package layout

import (
	"fmt"

	"github.com/matzehuels/matte/pkg/errors"
)

// Box is one region of a partitioned template.
type Box struct {
	ID   int  `json:"id"` // 1-based display id
	Rect Rect `json:"rect"`
}

// Name returns the box's identifier as stored in configuration files ("box1").
func (b Box) Name() string { return fmt.Sprintf("box%d", b.ID) }

// Partition applies t's cuts in order and returns the resulting boxes,
// numbered by their position in the final working list.
//
// A cut whose box index is out of range is a template authoring error.
// Partition does not check ratios; use Template.Validate for that.
func Partition(t Template) ([]Box, error) {
	rects := make([]Rect, 1, t.BoxCount())
	rects[0] = t.Origin()

	for i, c := range t.Cuts {
		if c.Box < 0 || c.Box >= len(rects) {
			return nil, errors.New(errors.ErrCodeInvalidTemplate,
				"%s: cut %d targets box index %d, only %d boxes exist", t.Name, i, c.Box, len(rects))
		}
		primary, remainder := c.split(rects[c.Box])
		rects = append(rects[:c.Box], rects[c.Box+1:]...)
		rects = append(rects, primary, remainder)
	}

	boxes := make([]Box, len(rects))
	for i, r := range rects {
		boxes[i] = Box{ID: i + 1, Rect: r}
	}
	return boxes, nil
}

// MustPartition is like Partition but panics on error.
// It is meant for the static built-in catalog.
func MustPartition(t Template) []Box {
	boxes, err := Partition(t)
	if err != nil {
		panic(err)
	}
	return boxes
}
