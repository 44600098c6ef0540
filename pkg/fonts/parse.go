package fonts

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// Entry is one font reported by convert.
type Entry struct {
	Name   string // ImageMagick font name, e.g. "Arial-Bold"
	Family string // declared family, "unknown" when ImageMagick could not read it
	Glyphs string // path of the font file
}

// Font is a font offered for captions.
type Font struct {
	IMFontName    string `json:"imFontName"`
	CSSFontFamily string `json:"cssFontFamily"`
	Glyphs        string `json:"glyphs,omitempty"`
}

var (
	fontRE     = regexp.MustCompile(`(?m)^ {2}Font: (.+)\n((?: {4}.+\n)+)`)
	attrRE     = regexp.MustCompile(` {4}(\w+): (.+)\n`)
	boldNameRE = regexp.MustCompile(`Bold$`)
	boldFileRE = regexp.MustCompile(`Bold\.[a-zA-Z]+$`)
	suffixRE   = regexp.MustCompile(`(?:[- ]?Bold)?\.[a-z]+$`)
	camelRE    = regexp.MustCompile(`([a-z])([A-Z])`)
)

// Parse extracts font entries from "convert -list font" output.
// Entries missing a family or glyph file are skipped.
func Parse(output string) []Entry {
	output = strings.ReplaceAll(output, "\r\n", "\n")

	var entries []Entry
	for _, m := range fontRE.FindAllStringSubmatch(output, -1) {
		attrs := make(map[string]string)
		for _, a := range attrRE.FindAllStringSubmatch(m[2], -1) {
			attrs[a[1]] = a[2]
		}
		if attrs["family"] == "" || attrs["glyphs"] == "" {
			continue
		}
		entries = append(entries, Entry{Name: m[1], Family: attrs["family"], Glyphs: attrs["glyphs"]})
	}
	return entries
}

// BoldOnly keeps entries whose name ends in "Bold" or whose glyph file is
// named *Bold.<ext>.
func BoldOnly(entries []Entry) []Entry {
	return slices.DeleteFunc(slices.Clone(entries), func(e Entry) bool {
		return !boldNameRE.MatchString(e.Name) && !boldFileRE.MatchString(e.Glyphs)
	})
}

// NoCJK drops CJK families, which ImageMagick lists in large numbers.
func NoCJK(entries []Entry) []Entry {
	return slices.DeleteFunc(slices.Clone(entries), func(e Entry) bool {
		return strings.Contains(e.Family, "CJK")
	})
}

// InferFamily returns e's family. An "unknown" family is derived from the
// glyph file name: "OpenSans-Bold.ttf" becomes "Open Sans".
func InferFamily(e Entry) string {
	if e.Family != "unknown" {
		return e.Family
	}
	name := suffixRE.ReplaceAllString(filepath.Base(e.Glyphs), "")
	return camelRE.ReplaceAllString(name, "${1} ${2}")
}

// Normalize converts entries to fonts.
func Normalize(entries []Entry) []Font {
	out := make([]Font, len(entries))
	for i, e := range entries {
		out[i] = Font{IMFontName: e.Name, CSSFontFamily: InferFamily(e), Glyphs: e.Glyphs}
	}
	return out
}

// SortByFamily sorts fonts case-insensitively by family, keeping the
// listing order of fonts in the same family.
func SortByFamily(fonts []Font) []Font {
	slices.SortStableFunc(fonts, func(a, b Font) int {
		return strings.Compare(strings.ToLower(a.CSSFontFamily), strings.ToLower(b.CSSFontFamily))
	})
	return fonts
}

// Bold returns the caption fonts among entries.
func Bold(entries []Entry) []Font {
	return SortByFamily(Normalize(BoldOnly(NoCJK(entries))))
}

// Find returns the font named imFontName.
func Find(fonts []Font, imFontName string) (Font, bool) {
	i := slices.IndexFunc(fonts, func(f Font) bool { return f.IMFontName == imFontName })
	if i < 0 {
		return Font{}, false
	}
	return fonts[i], true
}
