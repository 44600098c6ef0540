package settings

import (
	"encoding/json"
	"math"
	"strings"
)

// CurrentVersion is the schema version written by this release.
const CurrentVersion = 2

// Step upgrades a raw document from version From to From+1.
type Step struct {
	From  int
	Apply func(doc map[string]any)
}

// Steps is the ordered transition table. Versions without an entry are
// carried forward unchanged.
var Steps = []Step{
	{From: 1, Apply: splitFontFamily},
}

// Migrate upgrades doc in place to CurrentVersion and returns it.
// A missing or null version counts as 0. Documents at or above the current
// version are returned untouched, as are versions that are not whole numbers
// within int32 range.
func Migrate(doc map[string]any) map[string]any {
	v := 0
	if raw, ok := doc["version"]; ok && raw != nil {
		n, known := version(raw)
		if !known {
			return doc
		}
		v = n
	}
	if v >= CurrentVersion {
		return doc
	}
	for _, s := range Steps {
		if s.From >= v && s.From < CurrentVersion {
			s.Apply(doc)
		}
	}
	doc["version"] = CurrentVersion
	return doc
}

// splitFontFamily replaces the single v1 fontFamily with the CSS family and
// the ImageMagick bold font name derived from it.
func splitFontFamily(doc map[string]any) {
	family, ok := doc["fontFamily"].(string)
	delete(doc, "fontFamily")
	if !ok {
		if _, has := doc["cssFontFamily"]; has {
			return
		}
		family = DefaultCSSFontFamily
	}
	doc["cssFontFamily"] = family
	doc["imFontName"] = strings.ReplaceAll(family, " ", "") + "-Bold"
}

// version reports v as an int when it is a whole number that fits one.
func version(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
