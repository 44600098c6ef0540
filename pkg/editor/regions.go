package editor

import (
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/layout"
	"github.com/matzehuels/matte/pkg/paths"
	"github.com/matzehuels/matte/pkg/settings"
)

// ImageSizer reports the pixel dimensions of an image file.
type ImageSizer func(path string) (width, height int, err error)

// DecodeSize reads an image's dimensions from its header.
func DecodeSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, errors.FromOS(err, "open image %s", path)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "read image %s", path)
	}
	return cfg.Width, cfg.Height, nil
}

// DefaultCrop returns the largest crop of a w×h image, centered, whose aspect
// ratio matches box.
func DefaultCrop(w, h int, box layout.Rect) settings.Crop {
	if float64(w)*float64(box.Height) > float64(h)*float64(box.Width) {
		cw := roundInt(float64(h) * float64(box.Width) / float64(box.Height))
		return settings.Crop{X: (w - cw) / 2, Y: 0, W: cw, H: h}
	}
	ch := roundInt(float64(w) * float64(box.Height) / float64(box.Width))
	return settings.Crop{X: 0, Y: (h - ch) / 2, W: w, H: ch}
}

func roundInt(v float64) int { return int(math.Floor(v + 0.5)) }

// box returns the rectangle of id in the selected template.
func (c *Controller) box(id settings.BoxID) (layout.Rect, error) {
	if !id.Valid() || int(id) > len(c.boxes) {
		return layout.Rect{}, errors.New(errors.ErrCodeInvalidBox, "%s is not part of template %q (%d boxes)",
			id, c.Template().Name, len(c.boxes))
	}
	return c.boxes[id-1].Rect, nil
}

func (c *Controller) region(id settings.BoxID) (*settings.Region, error) {
	if _, err := c.box(id); err != nil {
		return nil, err
	}
	r, ok := c.doc.Regions[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidBox, "%s has no image", id)
	}
	return r, nil
}

// Place puts the image at path, relative to the working directory, into box
// with a centered default crop.
// The stored path is relative to the save file when possible. A caption
// already in the box is kept.
func (c *Controller) Place(ctx context.Context, id settings.BoxID, path string) error {
	rect, err := c.box(id)
	if err != nil {
		return err
	}
	if err := errors.ValidateImagePath(path); err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", path)
	}
	w, h, err := c.sizer(abs)
	if err != nil {
		return err
	}
	stored, err := paths.ToRelative(abs, c.doc.SaveFile)
	if err != nil {
		return err
	}

	r := &settings.Region{
		Crop:   DefaultCrop(w, h, rect),
		Width:  rect.Width,
		Height: rect.Height,
		Pos:    settings.Position{Top: rect.Y, Left: rect.X},
		Path:   stored,
	}
	if old, ok := c.doc.Regions[id]; ok {
		r.Caption = old.Caption
	}
	c.doc.Regions[id] = r
	c.logger.Debug("placed image", "box", id, "path", stored, "crop", r.Crop.Geometry())
	return c.autosave(ctx)
}

// SetCrop replaces the crop of the image in box. The crop must lie inside
// the source image.
func (c *Controller) SetCrop(ctx context.Context, id settings.BoxID, crop settings.Crop) error {
	r, err := c.region(id)
	if err != nil {
		return err
	}
	if crop.W <= 0 || crop.H <= 0 || crop.X < 0 || crop.Y < 0 {
		return errors.New(errors.ErrCodeInvalidCrop, "invalid crop %s", crop.Geometry())
	}
	w, h, err := c.sizer(c.doc.AbsPath(r))
	if err != nil {
		return err
	}
	if crop.X+crop.W > w || crop.Y+crop.H > h {
		return errors.New(errors.ErrCodeInvalidCrop, "crop %s exceeds image size %dx%d", crop.Geometry(), w, h)
	}
	r.Crop = crop
	return c.autosave(ctx)
}

// SetCaption sets the caption of the image in box. An empty caption removes it.
func (c *Controller) SetCaption(ctx context.Context, id settings.BoxID, caption string) error {
	r, err := c.region(id)
	if err != nil {
		return err
	}
	if err := errors.ValidateCaption(caption); err != nil {
		return err
	}
	r.Caption = caption
	return c.autosave(ctx)
}

// Remove clears the image from box. Removing from an empty box is a no-op.
func (c *Controller) Remove(ctx context.Context, id settings.BoxID) error {
	if _, err := c.box(id); err != nil {
		return err
	}
	if _, ok := c.doc.Regions[id]; !ok {
		return nil
	}
	delete(c.doc.Regions, id)
	return c.autosave(ctx)
}
