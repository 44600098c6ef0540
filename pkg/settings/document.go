package settings

import (
	"encoding/json"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/layout"
	"github.com/matzehuels/matte/pkg/paths"
)

// Defaults for documents that never chose a font.
const (
	DefaultCSSFontFamily = "Arial"
	DefaultIMFontName    = "Arial-Bold"
)

// Crop is the source-image rectangle shown in a box, in source pixels.
type Crop struct {
	X int `json:"cropX"`
	Y int `json:"cropY"`
	W int `json:"cropW"`
	H int `json:"cropH"`
}

// Geometry formats c as an ImageMagick geometry ("WxH+X+Y").
func (c Crop) Geometry() string {
	return layout.Rect{X: c.X, Y: c.Y, Width: c.W, Height: c.H}.String()
}

var geometryRE = regexp.MustCompile(`^(\d+)x(\d+)\+(\d+)\+(\d+)$`)

// ParseCrop parses an ImageMagick geometry ("WxH+X+Y") into a Crop.
func ParseCrop(s string) (Crop, error) {
	m := geometryRE.FindStringSubmatch(s)
	if m == nil {
		return Crop{}, errors.New(errors.ErrCodeInvalidCrop, "invalid crop %q (want WxH+X+Y)", s)
	}
	var v [4]int
	for i := range v {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Crop{}, errors.Wrap(errors.ErrCodeInvalidCrop, err, "invalid crop %q", s)
		}
		v[i] = n
	}
	return Crop{W: v[0], H: v[1], X: v[2], Y: v[3]}, nil
}

// Position is a box's top-left corner on the canvas.
type Position struct {
	Top  int `json:"top"`
	Left int `json:"left"`
}

// Region is the image placed in one box.
type Region struct {
	Crop    Crop     `json:"crop"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Pos     Position `json:"pos"`
	Path    string   `json:"path"`
	Caption string   `json:"caption,omitempty"`
}

// Document is a saved or auto-saved matte.
type Document struct {
	Version       int               `json:"version"`
	Template      int               `json:"curTemplate"`
	SaveFile      string            `json:"saveFile,omitempty"`
	CSSFontFamily string            `json:"cssFontFamily"`
	IMFontName    string            `json:"imFontName"`
	Regions       map[BoxID]*Region `json:"metrics"`
	SavedAt       time.Time         `json:"savedAt"`
}

// New returns an empty current-version document for the given template.
func New(template int) *Document {
	return &Document{
		Version:       CurrentVersion,
		Template:      template,
		CSSFontFamily: DefaultCSSFontFamily,
		IMFontName:    DefaultIMFontName,
		Regions:       map[BoxID]*Region{},
	}
}

// Boxes returns the ids of all placed regions in ascending order.
func (d *Document) Boxes() []BoxID {
	return slices.Sorted(maps.Keys(d.Regions))
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := *d
	c.Regions = make(map[BoxID]*Region, len(d.Regions))
	for id, r := range d.Regions {
		rc := *r
		c.Regions[id] = &rc
	}
	return &c
}

// AbsPath resolves a region's stored path against the document's save file.
func (d *Document) AbsPath(r *Region) string {
	return paths.ToAbsolute(r.Path, d.SaveFile)
}

// Rebase rewrites every region path from the current save file to cfg and
// makes cfg the document's save file.
func (d *Document) Rebase(cfg string) error {
	ps := make([]*string, 0, len(d.Regions))
	for _, id := range d.Boxes() {
		ps = append(ps, &d.Regions[id].Path)
	}
	if err := paths.RewriteAll(ps, d.SaveFile, cfg); err != nil {
		return err
	}
	d.SaveFile = cfg
	return nil
}

// Decode parses a document, migrating older schema versions first.
func Decode(data []byte) (*Document, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse document")
	}
	if raw == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document is not a JSON object")
	}
	raw = Migrate(raw)

	migrated, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "re-encode migrated document")
	}
	doc := New(0)
	if err := json.Unmarshal(migrated, doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode document")
	}
	if doc.Regions == nil {
		doc.Regions = map[BoxID]*Region{}
	}
	for id, r := range doc.Regions {
		if r == nil {
			delete(doc.Regions, id)
		}
	}
	return doc, nil
}

// Encode renders d as indented JSON. The save file is only included when
// withSaveFile is set; explicit saves omit it so the file stays portable.
func Encode(d *Document, withSaveFile bool) ([]byte, error) {
	out := *d
	if !withSaveFile {
		out.SaveFile = ""
	}
	if out.Regions == nil {
		out.Regions = map[BoxID]*Region{}
	}
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return data, nil
}
