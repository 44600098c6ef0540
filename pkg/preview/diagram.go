package preview

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/layout"
)

// Format is a diagram output format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg", "pdf" or "png" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPDF, FormatPNG:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported preview format %q (want svg, pdf or png)", s)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatPNG:
		return "image/png"
	default:
		return "image/svg+xml"
	}
}

// mmPerPixel maps canvas pixels to diagram millimeters: 4200px becomes 420mm.
const mmPerPixel = 0.1

var (
	backgroundColor = color.RGBA{0x11, 0x11, 0x11, 0xff}
	emptyColor      = color.RGBA{0x55, 0x55, 0x55, 0xff}
	filledColor     = color.RGBA{0x3a, 0x7b, 0xd5, 0xff}
	labelColor      = color.RGBA{0xee, 0xee, 0xee, 0xff}
)

// DiagramOptions controls diagram drawing.
type DiagramOptions struct {
	// Filled lists the box ids that hold an image.
	Filled map[int]bool

	// LabelFont is a TrueType/OpenType file used to label boxes. Boxes are
	// unlabeled when it is empty.
	LabelFont string

	// DPMM is the PNG resolution in dots per millimeter. Defaults to 1,
	// which gives a 420x325 image.
	DPMM float64
}

// Diagram draws t's boxes in format f to w.
func Diagram(w io.Writer, t layout.Template, f Format, opts DiagramOptions) error {
	boxes, err := layout.Partition(t)
	if err != nil {
		return err
	}

	width := layout.CanvasWidth * mmPerPixel
	height := layout.CanvasHeight * mmPerPixel
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	ctx.SetFillColor(backgroundColor)
	ctx.DrawPath(0, 0, canvas.Rectangle(width, height))

	var face *canvas.FontFace
	if opts.LabelFont != "" {
		data, err := os.ReadFile(opts.LabelFont)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFont, err, "read label font %s", opts.LabelFont)
		}
		family := canvas.NewFontFamily("label")
		if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFont, err, "load label font %s", opts.LabelFont)
		}
		face = family.Face(48, labelColor, canvas.FontRegular, canvas.FontNormal)
	}

	for _, b := range boxes {
		r := b.Rect
		ctx.SetFillColor(emptyColor)
		if opts.Filled[b.ID] {
			ctx.SetFillColor(filledColor)
		}
		x, y := float64(r.X)*mmPerPixel, float64(r.Y)*mmPerPixel
		bw, bh := float64(r.Width)*mmPerPixel, float64(r.Height)*mmPerPixel
		ctx.DrawPath(x, y, canvas.Rectangle(bw, bh))
		if face != nil {
			ctx.DrawText(x+bw/2, y+bh/2, canvas.NewTextLine(face, b.Name(), canvas.Center))
		}
	}

	return render(w, c, f, opts.DPMM)
}

func render(w io.Writer, c *canvas.Canvas, f Format, dpmm float64) error {
	switch f {
	case FormatSVG:
		writer := svg.New(w, c.W, c.H, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	case FormatPDF:
		writer := pdf.New(w, c.W, c.H, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
	case FormatPNG:
		if dpmm <= 0 {
			dpmm = 1
		}
		img := rasterizer.Draw(c, canvas.DPMM(dpmm), canvas.DefaultColorSpace)
		if err := imaging.Encode(w, img, imaging.PNG); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported preview format %q", f)
	}
	return nil
}
