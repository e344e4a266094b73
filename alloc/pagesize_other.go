//go:build !unix

package alloc

// pageSize falls back to the common 4KB page where the unix query is unavailable.
func pageSize() int {
	return defaultPageSize
}
