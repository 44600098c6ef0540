package convert

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/matte/pkg/layout"
	"github.com/matzehuels/matte/pkg/settings"
)

// DefaultOutput is the output file used when a request names none.
const DefaultOutput = "out.png"

const (
	pointSize     = "72"
	captionHeight = 225
	captionWidth  = 0.85 // share of the region width the caption may span
)

// PlacedRegion is a region ready to composite: its image path is absolute.
type PlacedRegion struct {
	Box    settings.BoxID
	Path   string
	Region *settings.Region
}

// Request describes one compositing run.
type Request struct {
	Canvas   layout.Rect
	FontName string
	Regions  []PlacedRegion // composited in slice order
	Output   string
}

// NewRequest builds a request for every placed region of doc, in box order,
// with image paths resolved against the document's save file.
func NewRequest(doc *settings.Document, output string) Request {
	req := Request{
		Canvas:   layout.Canvas(),
		FontName: doc.IMFontName,
		Output:   output,
	}
	for _, id := range doc.Boxes() {
		r := doc.Regions[id]
		req.Regions = append(req.Regions, PlacedRegion{Box: id, Path: doc.AbsPath(r), Region: r})
	}
	return req
}

// BuildArgs returns the convert arguments for req.
// Every region must carry crop data; a nil region panics.
func BuildArgs(req Request) []string {
	output := req.Output
	if output == "" {
		output = DefaultOutput
	}

	args := []string{
		"-size", fmt.Sprintf("%dx%d", req.Canvas.Width, req.Canvas.Height),
		"-font", req.FontName,
		"-pointsize", pointSize,
		"xc:black",
	}
	for _, pr := range req.Regions {
		args = append(args, regionArgs(pr)...)
	}
	return append(args, output)
}

func regionArgs(pr PlacedRegion) []string {
	r := pr.Region
	if r == nil {
		panic(fmt.Sprintf("convert: %s has no crop data", pr.Box))
	}

	args := []string{
		"(", pr.Path,
		"-normalize",
		"-crop", r.Crop.Geometry(),
		"-resize", fmt.Sprintf("%dx%d", r.Width, r.Height),
	}
	args = append(args, captionArgs(r)...)
	return append(args,
		")",
		"-gravity", "northwest",
		"-geometry", fmt.Sprintf("+%d+%d", r.Pos.Left, r.Pos.Top),
		"-composite",
	)
}

// captionArgs renders the caption white on transparent with a three layer
// drop shadow and composites it at the bottom center of the region.
func captionArgs(r *settings.Region) []string {
	text := CaptionText(r.Caption)
	if text == "" {
		return nil
	}
	width := int(math.Floor(float64(r.Width)*captionWidth + 0.5))
	return []string{
		"(",
		"-background", "none",
		"-size", fmt.Sprintf("%dx%d", width, captionHeight),
		"xc:none",
		"-stroke", "none",
		"-fill", "white",
		"-gravity", "south",
		"-annotate", "0", text,
		"-fill", "black",
		"(", "+clone", "-shadow", "100x6+0+0", ")", "+swap",
		"(", "+clone", "-shadow", "90x12+0+0", ")", "+swap",
		"(", "+clone", "-shadow", "80x20+0+0", ")", "+swap",
		"-layers", "merge",
		"+repage",
		")",
		"-gravity", "south",
		"-geometry", "+0+0",
		"-composite",
	}
}

// CaptionText trims s and replaces newlines with the two characters `\n`,
// which -annotate expands back into line breaks.
func CaptionText(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", `\n`)
}
