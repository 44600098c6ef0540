package editor

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/matte/pkg/convert"
	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/fonts"
	"github.com/matzehuels/matte/pkg/layout"
	"github.com/matzehuels/matte/pkg/observability"
	"github.com/matzehuels/matte/pkg/session"
	"github.com/matzehuels/matte/pkg/settings"
)

// Options configures a Controller. Zero values get working defaults.
type Options struct {
	Catalog  layout.Catalog    // defaults to layout.Builtin()
	Store    session.Store     // defaults to an in-memory store
	Renderer *convert.Renderer // defaults to convert.NewRenderer(nil, "", Logger)
	Fonts    *fonts.Lister     // optional; enables installed-font checks on export
	Sizer    ImageSizer        // defaults to DecodeSize
	Logger   *log.Logger
	Now      func() time.Time
}

// Controller applies operations to a single document.
type Controller struct {
	catalog  layout.Catalog
	store    session.Store
	renderer *convert.Renderer
	fonts    *fonts.Lister
	sizer    ImageSizer
	logger   *log.Logger
	now      func() time.Time

	doc   *settings.Document
	boxes []layout.Box
}

// New creates a controller holding an empty document on template 0.
func New(opts Options) *Controller {
	if opts.Catalog == nil {
		opts.Catalog = layout.Builtin()
	}
	if opts.Store == nil {
		opts.Store = session.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = convert.NewRenderer(nil, "", opts.Logger)
	}
	if opts.Sizer == nil {
		opts.Sizer = DecodeSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	c := &Controller{
		catalog:  opts.Catalog,
		store:    opts.Store,
		renderer: opts.Renderer,
		fonts:    opts.Fonts,
		sizer:    opts.Sizer,
		logger:   opts.Logger,
		now:      opts.Now,
	}
	c.reset(0)
	return c
}

// Document returns a copy of the current document.
func (c *Controller) Document() *settings.Document { return c.doc.Clone() }

// Catalog returns the templates the controller can select from.
func (c *Controller) Catalog() layout.Catalog { return c.catalog }

// Template returns the selected template.
func (c *Controller) Template() layout.Template { return c.catalog[c.doc.Template] }

// Boxes returns the boxes of the selected template.
func (c *Controller) Boxes() []layout.Box { return append([]layout.Box(nil), c.boxes...) }

// Region returns the region placed in box, or nil.
func (c *Controller) Region(box settings.BoxID) *settings.Region {
	if r, ok := c.doc.Regions[box]; ok {
		rc := *r
		return &rc
	}
	return nil
}

// reset replaces the document with an empty one on template i, keeping the
// chosen font. i must be a valid catalog index.
func (c *Controller) reset(i int) {
	doc := settings.New(i)
	if c.doc != nil {
		doc.CSSFontFamily = c.doc.CSSFontFamily
		doc.IMFontName = c.doc.IMFontName
	}
	c.doc = doc
	c.boxes = layout.MustPartition(c.catalog[i])
}

// Restore loads the auto-save snapshot, or starts on template 0 when there
// is none. An unreadable snapshot, or one whose template is no longer in the
// catalog, is logged and replaced by template 0.
func (c *Controller) Restore(ctx context.Context) error {
	doc, err := c.store.Get(ctx, session.DefaultName)
	if err != nil {
		c.logger.Warn("ignoring unreadable auto-save", "error", err)
		c.reset(0)
		return nil
	}
	if doc == nil {
		c.reset(0)
		return nil
	}
	c.logger.Debug("restoring auto-save", "savedAt", doc.SavedAt)
	if err := c.adopt(doc); err != nil {
		c.logger.Warn("ignoring auto-save", "template", doc.Template, "error", err)
		c.reset(0)
	}
	return nil
}

// adopt makes doc the working document after checking it against the catalog.
func (c *Controller) adopt(doc *settings.Document) error {
	if _, err := c.catalog.Get(doc.Template); err != nil {
		return err
	}
	boxes, err := c.catalog.Boxes(doc.Template)
	if err != nil {
		return err
	}
	for id := range doc.Regions {
		if int(id) > len(boxes) {
			c.logger.Warn("dropping region outside template", "box", id, "template", c.catalog[doc.Template].Name)
			delete(doc.Regions, id)
		}
	}
	c.doc = doc
	c.boxes = boxes
	return nil
}

// autosave snapshots the document. Failures are logged and returned.
func (c *Controller) autosave(ctx context.Context) error {
	c.doc.SavedAt = c.now().UTC()
	err := c.store.Set(ctx, session.DefaultName, c.doc)
	observability.Render().OnSave(ctx, session.DefaultName, true, err)
	if err != nil {
		c.logger.Error("auto-save failed", "err", err)
		return errors.Wrap(errors.ErrCodeIO, err, "auto-save")
	}
	return nil
}

// New starts an empty document on template 0 without a save file.
// The caption font is kept.
func (c *Controller) New(ctx context.Context) error {
	c.reset(0)
	return c.autosave(ctx)
}

// SelectTemplate switches to template i, discarding every placed region.
func (c *Controller) SelectTemplate(ctx context.Context, i int) error {
	if _, err := c.catalog.Get(i); err != nil {
		return err
	}
	saveFile := c.doc.SaveFile
	c.reset(i)
	c.doc.SaveFile = saveFile
	return c.autosave(ctx)
}

// SetFont selects the caption font.
func (c *Controller) SetFont(ctx context.Context, f fonts.Font) error {
	if err := errors.ValidateFontName(f.IMFontName); err != nil {
		return err
	}
	c.doc.IMFontName = f.IMFontName
	c.doc.CSSFontFamily = f.CSSFontFamily
	if c.doc.CSSFontFamily == "" {
		c.doc.CSSFontFamily = strings.TrimSuffix(f.IMFontName, "-Bold")
	}
	return c.autosave(ctx)
}

// Open loads the document saved at cfg, migrating older versions.
func (c *Controller) Open(ctx context.Context, cfg string) error {
	data, err := os.ReadFile(cfg)
	if err != nil {
		return errors.FromOS(err, "open %s", cfg)
	}
	doc, err := settings.Decode(data)
	if err != nil {
		return err
	}
	doc.SaveFile = cfg
	if err := c.adopt(doc); err != nil {
		return err
	}
	c.logger.Info("opened document", "file", cfg, "regions", len(doc.Regions))
	return c.autosave(ctx)
}

// Save writes the document to its save file.
func (c *Controller) Save(ctx context.Context) error {
	if c.doc.SaveFile == "" {
		return errors.New(errors.ErrCodeNoSaveFile, "document has no save file; use save-as")
	}
	if err := c.autosave(ctx); err != nil {
		return err
	}
	data, err := settings.Encode(c.doc, false)
	if err != nil {
		return err
	}
	err = os.WriteFile(c.doc.SaveFile, data, 0o644)
	observability.Render().OnSave(ctx, c.doc.SaveFile, false, err)
	if err != nil {
		return errors.FromOS(err, "save %s", c.doc.SaveFile)
	}
	c.logger.Info("saved document", "file", c.doc.SaveFile)
	return nil
}

// SaveAs makes cfg the save file, re-anchoring relative image paths, and
// saves. The document is unchanged if a path cannot be re-anchored.
func (c *Controller) SaveAs(ctx context.Context, cfg string) error {
	if cfg == "" {
		return errors.New(errors.ErrCodeInvalidPath, "save path cannot be empty")
	}
	doc := c.doc.Clone()
	if err := doc.Rebase(cfg); err != nil {
		return err
	}
	c.doc = doc
	return c.Save(ctx)
}
