package layout

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matzehuels/matte/pkg/errors"
)

var (
	cutLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?|\.\d+`},
		{Name: "Ident", Pattern: `[A-Za-z]+`},
		{Name: "Percent", Pattern: `%`},
	})

	cutParser = participle.MustBuild[cutExpr](
		participle.Lexer(cutLexer),
		participle.Elide("Whitespace"),
		participle.CaseInsensitive("Ident"),
	)
)

// cutExpr is the grammar of a single cut: "<box> <edge> <ratio>".
//
//	0 left 48.18%
//	1 top pct 0.4891
//	2 right aspect 1.5
type cutExpr struct {
	Box   int        `parser:"@Number"`
	Edge  string     `parser:"@('left' | 'right' | 'top' | 'bottom')"`
	Ratio *ratioExpr `parser:"@@"`
}

type ratioExpr struct {
	Aspect  *float64 `parser:"  'aspect' @Number"`
	Pct     *float64 `parser:"| 'pct' @Number"`
	Percent *float64 `parser:"| @Number '%'"`
}

func (r *ratioExpr) ratio() Ratio {
	switch {
	case r.Aspect != nil:
		return Aspect(*r.Aspect)
	case r.Pct != nil:
		return Pct(*r.Pct)
	default:
		return Pct(*r.Percent / 100)
	}
}

// ParseCut parses a cut expression such as "0 left 48.18%".
// Ratios may be written as a percentage, "pct <fraction>" or "aspect <w/h>".
// The result's String method produces an expression ParseCut accepts.
func ParseCut(s string) (Cut, error) {
	expr, err := cutParser.ParseString("", s)
	if err != nil {
		return Cut{}, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "invalid cut %q", s)
	}
	edge, err := ParseEdge(expr.Edge)
	if err != nil {
		return Cut{}, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "invalid cut %q", s)
	}
	return Cut{Box: expr.Box, Edge: edge, Ratio: expr.Ratio.ratio()}, nil
}

// ParseCuts parses every expression in exprs, stopping at the first error.
func ParseCuts(exprs []string) ([]Cut, error) {
	cuts := make([]Cut, 0, len(exprs))
	for _, s := range exprs {
		c, err := ParseCut(s)
		if err != nil {
			return nil, err
		}
		cuts = append(cuts, c)
	}
	return cuts, nil
}
