package preview

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/matte/pkg/cache"
	"github.com/matzehuels/matte/pkg/layout"
)

// Diagrams renders template diagrams through a cache.
type Diagrams struct {
	Cache cache.Cache
	Keyer cache.Keyer
	TTL   time.Duration
}

// NewDiagrams returns a Diagrams backed by c. A nil c disables caching.
func NewDiagrams(c cache.Cache) *Diagrams {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Diagrams{Cache: c, Keyer: cache.NewDefaultKeyer()}
}

// Render returns the diagram bytes for t, drawing it only on a cache miss.
// Cache failures never fail the render.
func (d *Diagrams) Render(ctx context.Context, t layout.Template, f Format, opts DiagramOptions) ([]byte, error) {
	key := d.Keyer.PreviewKey(identity(t, opts), cache.PreviewKeyOpts{Format: string(f), Scale: opts.DPMM})
	if data, ok, err := d.Cache.Get(ctx, key); err == nil && ok {
		return data, nil
	}

	var buf bytes.Buffer
	if err := Diagram(&buf, t, f, opts); err != nil {
		return nil, err
	}
	_ = d.Cache.Set(ctx, key, buf.Bytes(), d.TTL)
	return buf.Bytes(), nil
}

// identity captures everything about t and opts that changes the drawing.
func identity(t layout.Template, opts DiagramOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|buffer=%t|font=%s", t.Name, t.TopBuffer, opts.LabelFont)
	for _, c := range t.Cuts {
		fmt.Fprintf(&b, "|%s", c)
	}
	filled := make([]int, 0, len(opts.Filled))
	for id, ok := range opts.Filled {
		if ok {
			filled = append(filled, id)
		}
	}
	slices.Sort(filled)
	fmt.Fprintf(&b, "|filled=%v", filled)
	return b.String()
}
