// Package fonts lists the bold fonts ImageMagick can render captions with.
//
// The list comes from "convert -list font", whose output looks like:
//
//	  Font: DejaVu-Sans-Bold
//	    family: DejaVu Sans
//	    style: Normal
//	    stretch: Normal
//	    weight: 700
//	    glyphs: /usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf
//
// [Parse] extracts entries that declare both a family and a glyph file, and
// [Bold] reduces them to the bold, non-CJK fonts offered to the user, each
// carrying the ImageMagick font name and the CSS family used for on-screen
// previews. [Lister] runs the command and caches the result.
package fonts
