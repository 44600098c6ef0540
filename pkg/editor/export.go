package editor

import (
	"context"

	"github.com/matzehuels/matte/pkg/convert"
	"github.com/matzehuels/matte/pkg/session"
)

// Request returns the compositing request for the current document.
func (c *Controller) Request(output string) convert.Request {
	return convert.NewRequest(c.doc, output)
}

// renderKey identifies the document for render serialization.
func (c *Controller) renderKey() string {
	if c.doc.SaveFile != "" {
		return c.doc.SaveFile
	}
	return session.DefaultName
}

// Export composites the document into output.
//
// When a font lister is configured and the document's font is not installed,
// the first installed bold font is used for this export and a warning is
// logged; the document keeps its font.
func (c *Controller) Export(ctx context.Context, output string) (*convert.Result, error) {
	req := c.Request(output)
	if c.fonts != nil {
		f, fallback, err := c.fonts.Resolve(ctx, req.FontName)
		if err != nil {
			c.logger.Warn("could not check installed fonts", "err", err)
		} else if fallback {
			req.FontName = f.IMFontName
		}
	}
	return c.renderer.Render(ctx, c.renderKey(), req)
}

// CommandLine returns the shell command that exports the document to
// convert.DefaultOutput.
func (c *Controller) CommandLine() string {
	return c.renderer.CommandLine(c.Request(convert.DefaultOutput))
}
