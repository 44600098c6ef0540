//go:build !unix

package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// volumeOf identifies the volume holding path by its drive letter or UNC share.
func volumeOf(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return strings.ToUpper(filepath.VolumeName(path)), nil
}
