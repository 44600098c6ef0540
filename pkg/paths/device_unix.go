//go:build unix

package paths

import (
	"io/fs"
	"strconv"

	"golang.org/x/sys/unix"
)

// volumeOf identifies the filesystem device holding path.
func volumeOf(path string) (string, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return "", &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return strconv.FormatUint(uint64(st.Dev), 10), nil
}
