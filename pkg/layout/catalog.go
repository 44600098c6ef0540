package layout

import (
	"slices"

	"github.com/matzehuels/matte/pkg/errors"
)

// Catalog is an ordered list of templates. Templates are addressed by index,
// which is what configuration files store.
type Catalog []Template

var builtin = Catalog{
	{
		Name: "Left, 6 Boxes",
		Cuts: []Cut{
			{Box: 0, Edge: Left, Ratio: Pct(0.4818)},
			{Box: 1, Edge: Top, Ratio: Pct(0.4891)},
			{Box: 2, Edge: Right, Ratio: Pct(0.4432)},
			{Box: 3, Edge: Top, Ratio: Pct(0.48)},
			{Box: 4, Edge: Left, Ratio: Pct(0.48)},
		},
	},
	{
		Name: "Left, 7 Boxes",
		Cuts: []Cut{
			{Box: 0, Edge: Left, Ratio: Pct(0.4818)},
			{Box: 1, Edge: Top, Ratio: Pct(0.4891)},
			{Box: 2, Edge: Right, Ratio: Pct(0.4432)},
			{Box: 3, Edge: Top, Ratio: Pct(0.48)},
			{Box: 4, Edge: Left, Ratio: Pct(0.48)},
			{Box: 5, Edge: Top, Ratio: Pct(0.47)},
		},
	},
	{
		Name: "Left, 5 Boxes",
		Cuts: []Cut{
			{Box: 0, Edge: Left, Ratio: Pct(0.4818)},
			{Box: 1, Edge: Top, Ratio: Pct(0.4891)},
			{Box: 2, Edge: Right, Ratio: Pct(0.4432)},
			{Box: 3, Edge: Top, Ratio: Pct(0.48)},
		},
	},
	{
		Name: "Right, 6 Boxes",
		Cuts: []Cut{
			{Box: 0, Edge: Right, Ratio: Pct(0.4818)},
			{Box: 1, Edge: Top, Ratio: Pct(0.4891)},
			{Box: 2, Edge: Left, Ratio: Pct(0.4432)},
			{Box: 3, Edge: Top, Ratio: Pct(0.48)},
			{Box: 4, Edge: Right, Ratio: Pct(0.48)},
		},
	},
	{
		Name: "Right, 7 Boxes",
		Cuts: []Cut{
			{Box: 0, Edge: Right, Ratio: Pct(0.4818)},
			{Box: 1, Edge: Top, Ratio: Pct(0.4891)},
			{Box: 2, Edge: Left, Ratio: Pct(0.4432)},
			{Box: 3, Edge: Top, Ratio: Pct(0.48)},
			{Box: 4, Edge: Right, Ratio: Pct(0.48)},
			{Box: 5, Edge: Top, Ratio: Pct(0.47)},
		},
	},
	{
		Name: "Right, 5 Boxes",
		Cuts: []Cut{
			{Box: 0, Edge: Right, Ratio: Pct(0.4818)},
			{Box: 1, Edge: Top, Ratio: Pct(0.4891)},
			{Box: 2, Edge: Left, Ratio: Pct(0.4432)},
			{Box: 3, Edge: Top, Ratio: Pct(0.48)},
		},
	},
	{
		Name: "Cover (Left)",
		Cuts: []Cut{
			{Box: 0, Edge: Left, Ratio: Pct(0.4818)},
			{Box: 1, Edge: Top, Ratio: Pct(0.4891)},
			{Box: 2, Edge: Right, Ratio: Pct(0.4432)},
			{Box: 3, Edge: Top, Ratio: Pct(0.48)},
		},
		TopBuffer: true,
	},
}

func init() {
	for _, t := range builtin {
		if err := t.Validate(); err != nil {
			panic(err)
		}
	}
}

// Builtin returns a copy of the reference templates.
func Builtin() Catalog {
	return slices.Clone(builtin)
}

// Get returns the template at index i.
func (c Catalog) Get(i int) (Template, error) {
	if i < 0 || i >= len(c) {
		return Template{}, errors.New(errors.ErrCodeInvalidTemplate, "template index %d out of range (0-%d)", i, len(c)-1)
	}
	return c[i], nil
}

// Boxes partitions the template at index i.
func (c Catalog) Boxes(i int) ([]Box, error) {
	t, err := c.Get(i)
	if err != nil {
		return nil, err
	}
	return Partition(t)
}

// With returns a new catalog with extra appended after validating each one.
// Names must be unique across the result.
func (c Catalog) With(extra ...Template) (Catalog, error) {
	out := slices.Clone(c)
	for _, t := range extra {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if out.Index(t.Name) >= 0 {
			return nil, errors.New(errors.ErrCodeInvalidTemplate, "duplicate template name %q", t.Name)
		}
		out = append(out, t)
	}
	return out, nil
}

// Index returns the index of the template with the given name, or -1.
func (c Catalog) Index(name string) int {
	return slices.IndexFunc(c, func(t Template) bool { return t.Name == name })
}
