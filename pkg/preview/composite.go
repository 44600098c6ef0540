package preview

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/layout"
	"github.com/matzehuels/matte/pkg/settings"
)

// DefaultScale renders composites at a tenth of the export size.
const DefaultScale = 0.1

// MaxScale is the largest composite scale, the full export size.
const MaxScale = 1.0

// Composite pastes every placed region of doc onto a black canvas scaled by
// scale (DefaultScale when zero). Scales above MaxScale are rejected.
func Composite(doc *settings.Document, scale float64) (image.Image, error) {
	if math.IsNaN(scale) || scale > MaxScale {
		return nil, errors.New(errors.ErrCodeInvalidInput, "composite scale %v must be in (0, %v]", scale, MaxScale)
	}
	if scale <= 0 {
		scale = DefaultScale
	}
	px := func(v int) int { return int(math.Round(float64(v) * scale)) }

	dst := imaging.New(px(layout.CanvasWidth), px(layout.CanvasHeight), color.NRGBA{0, 0, 0, 255})
	for _, id := range doc.Boxes() {
		r := doc.Regions[id]
		path := doc.AbsPath(r)
		src, err := imaging.Open(path)
		if err != nil {
			return nil, errors.FromOS(err, "open %s for %s", path, id)
		}

		crop := image.Rect(r.Crop.X, r.Crop.Y, r.Crop.X+r.Crop.W, r.Crop.Y+r.Crop.H)
		tile := imaging.Crop(src, crop)
		w, h := max(px(r.Width), 1), max(px(r.Height), 1)
		tile = imaging.Resize(tile, w, h, imaging.Lanczos)
		dst = imaging.Paste(dst, tile, image.Pt(px(r.Pos.Left), px(r.Pos.Top)))
	}
	return dst, nil
}

// WriteComposite encodes img as PNG, or JPEG when jpeg is set.
func WriteComposite(w io.Writer, img image.Image, jpeg bool) error {
	format := imaging.PNG
	if jpeg {
		format = imaging.JPEG
	}
	if err := imaging.Encode(w, img, format); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode preview")
	}
	return nil
}
