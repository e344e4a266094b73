//go:build unix

package alloc

import "golang.org/x/sys/unix"

// pageSize returns the OS memory page size.
func pageSize() int {
	return unix.Getpagesize()
}
