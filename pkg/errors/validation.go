package errors

import (
	"strings"
	"unicode"
)

// maxCaptionLength bounds caption text handed to -annotate.
const maxCaptionLength = 1000

// ValidateImagePath rejects paths that cannot name an image file.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not start with '-' (convert would read it as an option)
func ValidateImagePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "image path cannot be empty")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "image path contains invalid characters")
		}
	}
	if strings.HasPrefix(path, "-") {
		return New(ErrCodeInvalidPath, "image path cannot start with '-': %q", path)
	}
	return nil
}

// ValidateCaption checks caption text. Newlines and tabs are allowed,
// other control characters are not.
func ValidateCaption(text string) error {
	if len(text) > maxCaptionLength {
		return New(ErrCodeInvalidInput, "caption too long (max %d characters)", maxCaptionLength)
	}
	for _, r := range text {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "caption contains invalid control characters")
		}
	}
	return nil
}

// ValidateFontName validates an ImageMagick font name (e.g. "Arial-Bold").
func ValidateFontName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidFont, "font name cannot be empty")
	}
	if strings.HasPrefix(name, "-") {
		return New(ErrCodeInvalidFont, "font name cannot start with '-': %q", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFont, "font name contains invalid characters")
		}
	}
	return nil
}
