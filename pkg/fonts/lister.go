package fonts

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/matte/pkg/cache"
	"github.com/matzehuels/matte/pkg/convert"
	"github.com/matzehuels/matte/pkg/errors"
)

// DefaultTTL is how long a font list stays cached.
const DefaultTTL = 24 * time.Hour

// Lister runs "convert -list font" and caches the bold fonts it reports.
type Lister struct {
	Runner convert.ProcessRunner
	Binary string
	Cache  cache.Cache
	Keyer  cache.Keyer
	TTL    time.Duration
	Logger *log.Logger
}

// NewLister creates a lister. Nil dependencies get the same defaults as
// convert.NewRenderer, a NullCache and the DefaultKeyer.
func NewLister(runner convert.ProcessRunner, binary string, c cache.Cache, logger *log.Logger) *Lister {
	if runner == nil {
		runner = convert.ExecRunner{}
	}
	if binary == "" {
		binary = convert.DefaultBinary
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Lister{
		Runner: runner,
		Binary: binary,
		Cache:  c,
		Keyer:  cache.NewDefaultKeyer(),
		TTL:    DefaultTTL,
		Logger: logger,
	}
}

// ListBold returns the installed bold fonts, sorted by family.
func (l *Lister) ListBold(ctx context.Context) ([]Font, error) {
	key := l.Keyer.FontsKey(l.Binary)
	if data, hit, err := l.Cache.Get(ctx, key); err == nil && hit {
		var fonts []Font
		if err := json.Unmarshal(data, &fonts); err == nil {
			l.Logger.Debug("font list from cache", "fonts", len(fonts))
			return fonts, nil
		}
	}

	stdout, _, err := l.Runner.Run(ctx, l.Binary, []string{"-list", "font"})
	entries := Parse(string(stdout))
	if err != nil {
		if len(entries) == 0 {
			return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "list fonts")
		}
		// convert exits non-zero on some broken type.xml files but still
		// prints the fonts it could read.
		l.Logger.Warn("font listing reported an error", "err", err)
	}

	fonts := Bold(entries)
	l.Logger.Debug("listed fonts", "entries", len(entries), "bold", len(fonts))

	if data, err := json.Marshal(fonts); err == nil {
		if err := l.Cache.Set(ctx, key, data, l.TTL); err != nil {
			l.Logger.Warn("cache font list", "err", err)
		}
	}
	return fonts, nil
}

// Resolve returns the installed font named imFontName. When it is missing the
// first listed font is returned with fallback set.
func (l *Lister) Resolve(ctx context.Context, imFontName string) (font Font, fallback bool, err error) {
	fonts, err := l.ListBold(ctx)
	if err != nil {
		return Font{}, false, err
	}
	if f, ok := Find(fonts, imFontName); ok {
		return f, false, nil
	}
	if len(fonts) == 0 {
		return Font{}, false, errors.New(errors.ErrCodeFontNotFound, "no bold fonts installed")
	}
	l.Logger.Warn("font not installed, using fallback", "font", imFontName, "fallback", fonts[0].IMFontName)
	return fonts[0], true, nil
}
