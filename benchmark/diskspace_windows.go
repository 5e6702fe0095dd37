//go:build windows
// +build windows

package benchmark

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// FreeSpace reports the number of bytes available to the calling user on the
// volume holding dir.
func FreeSpace(dir string) (uint64, error) {
	path, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return 0, fmt.Errorf("invalid directory path %s: %v", dir, err)
	}

	var freeToCaller, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(path, &freeToCaller, &total, &totalFree); err != nil {
		return 0, fmt.Errorf("unable to query free space of %s: %v", dir, err)
	}
	return freeToCaller, nil
}
