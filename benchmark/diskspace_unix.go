//go:build linux
// +build linux

package benchmark

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// FreeSpace reports the number of bytes available to unprivileged users on
// the filesystem holding dir.
func FreeSpace(dir string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return 0, fmt.Errorf("unable to stat filesystem of %s: %v", dir, err)
	}
	return uint64(st.Bavail) * uint64(st.Bsize), nil
}
