package fonts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const listOutput = `
  Path: /etc/ImageMagick-6/type-dejavu.xml
  Font: DejaVu-Sans-Bold
    family: DejaVu Sans
    style: Normal
    stretch: Normal
    weight: 700
    glyphs: /usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf
  Font: DejaVu-Sans
    family: DejaVu Sans
    style: Normal
    stretch: Normal
    weight: 400
    glyphs: /usr/share/fonts/truetype/dejavu/DejaVuSans.ttf

  Path: System Fonts
  Font: Noto-Sans-CJK-JP-Bold
    family: Noto Sans CJK JP
    style: Normal
    stretch: Normal
    weight: 700
    glyphs: /usr/share/fonts/opentype/noto/NotoSansCJK-Bold.ttc
  Font: OpenSans-Bold
    family: unknown
    style: Normal
    stretch: Normal
    weight: 700
    glyphs: /usr/share/fonts/truetype/open-sans/OpenSans-Bold.ttf
  Font: arial-black
    family: Arial
    style: Normal
    stretch: Normal
    weight: 900
    glyphs: /usr/share/fonts/truetype/msttcorefonts/Arial_Bold.ttf
  Font: Broken
    style: Normal
    glyphs: /tmp/broken.ttf
`

func TestParse(t *testing.T) {
	got := Parse(listOutput)
	want := []Entry{
		{Name: "DejaVu-Sans-Bold", Family: "DejaVu Sans", Glyphs: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
		{Name: "DejaVu-Sans", Family: "DejaVu Sans", Glyphs: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"},
		{Name: "Noto-Sans-CJK-JP-Bold", Family: "Noto Sans CJK JP", Glyphs: "/usr/share/fonts/opentype/noto/NotoSansCJK-Bold.ttc"},
		{Name: "OpenSans-Bold", Family: "unknown", Glyphs: "/usr/share/fonts/truetype/open-sans/OpenSans-Bold.ttf"},
		{Name: "arial-black", Family: "Arial", Glyphs: "/usr/share/fonts/truetype/msttcorefonts/Arial_Bold.ttf"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCRLF(t *testing.T) {
	out := "  Font: Arial-Bold\r\n    family: Arial\r\n    glyphs: /f/Arial-Bold.ttf\r\n"
	got := Parse(out)
	if len(got) != 1 || got[0].Glyphs != "/f/Arial-Bold.ttf" {
		t.Errorf("Parse() = %+v", got)
	}
}

func TestBold(t *testing.T) {
	got := Bold(Parse(listOutput))
	want := []Font{
		{IMFontName: "arial-black", CSSFontFamily: "Arial", Glyphs: "/usr/share/fonts/truetype/msttcorefonts/Arial_Bold.ttf"},
		{IMFontName: "DejaVu-Sans-Bold", CSSFontFamily: "DejaVu Sans", Glyphs: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
		{IMFontName: "OpenSans-Bold", CSSFontFamily: "Open Sans", Glyphs: "/usr/share/fonts/truetype/open-sans/OpenSans-Bold.ttf"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bold() mismatch (-want +got):\n%s", diff)
	}
}

func TestInferFamily(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{Entry{Family: "Helvetica"}, "Helvetica"},
		{Entry{Family: "unknown", Glyphs: "/x/OpenSans-Bold.ttf"}, "Open Sans"},
		{Entry{Family: "unknown", Glyphs: "/x/SourceCodePro Bold.otf"}, "Source Code Pro"},
		{Entry{Family: "unknown", Glyphs: "/x/LiberationSerifBold.ttf"}, "Liberation Serif"},
		{Entry{Family: "unknown", Glyphs: "/x/Impact.ttf"}, "Impact"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := InferFamily(tt.entry); got != tt.want {
				t.Errorf("InferFamily(%+v) = %q, want %q", tt.entry, got, tt.want)
			}
		})
	}
}

func TestSortByFamilyStable(t *testing.T) {
	fonts := []Font{
		{IMFontName: "b1", CSSFontFamily: "beta"},
		{IMFontName: "A1", CSSFontFamily: "Alpha"},
		{IMFontName: "b2", CSSFontFamily: "Beta"},
		{IMFontName: "a2", CSSFontFamily: "alpha"},
	}
	got := SortByFamily(fonts)
	var names []string
	for _, f := range got {
		names = append(names, f.IMFontName)
	}
	if diff := cmp.Diff([]string{"A1", "a2", "b1", "b2"}, names); diff != "" {
		t.Errorf("SortByFamily() order mismatch (-want +got):\n%s", diff)
	}
}

func TestFiltersDoNotModifyInput(t *testing.T) {
	in := []Entry{{Name: "X", Family: "Y CJK"}, {Name: "Z-Bold", Family: "Z"}}
	_ = NoCJK(in)
	_ = BoldOnly(in)
	if in[0].Name != "X" || in[1].Name != "Z-Bold" {
		t.Errorf("filters modified input: %+v", in)
	}
}
