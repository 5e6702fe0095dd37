//go:build linux
// +build linux

package benchmark

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SetMaxResources raises the open-file limit to the hard maximum so that
// spawning the load generator and its log files never trips the default
// soft limit.
func SetMaxResources() error {
	rLimit := unix.Rlimit{}

	err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		return fmt.Errorf("unable to get rlimit: %v", err)
	}

	rLimit.Cur = rLimit.Max
	err = unix.Setrlimit(unix.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		return fmt.Errorf("unable to set open file limit: %v", err)
	}
	return nil
}
