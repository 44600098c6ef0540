package convert

import "strings"

// Escape quotes s for a POSIX shell using whichever of single quotes,
// double quotes or backslashes gives the shortest result. Ties prefer single
// quotes, then double quotes.
//
// Double quotes are not used for strings containing '!' since shells keep
// the backslash of an escaped '!' inside double quotes. Backslashes are not
// used for strings containing a newline.
func Escape(s string) string {
	best := singleQuote(s)
	if !strings.Contains(s, "!") {
		if c := doubleQuote(s); len(c) < len(best) {
			best = c
		}
	}
	if s != "" && !strings.Contains(s, "\n") {
		if c := backslash(s); len(c) < len(best) {
			best = c
		}
	}
	return best
}

// CommandLine joins name and args into a copyable shell command.
func CommandLine(name string, args []string) string {
	var b strings.Builder
	b.WriteString(name)
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(Escape(a))
	}
	return b.String()
}

func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func doubleQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '$', '"', '\\', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

func backslash(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !bare(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// bare reports whether r needs no escaping outside quotes.
func bare(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("_=+:,./-", r)
}
