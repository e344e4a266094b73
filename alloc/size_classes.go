package alloc

import (
	"slices"
	"unsafe"
)

const (
	// defaultPageSize is used when the OS page size is unknown.
	defaultPageSize = 4096

	// maxClasses bounds the table for zero-sized element types, whose byte
	// size never reaches the page ceiling.
	maxClasses = 32
)

// sizeClassTable holds the element capacity of each pooled block class.
// Classes double from the minimum until a block reaches the byte ceiling.
type sizeClassTable struct {
	caps []int // ascending; caps[i] is the block capacity of class i
}

// newSizeClassTable computes class capacities for elements of elemSize bytes.
//
//	min=8, elemSize=8, ceiling=64KB → 8, 16, 32, ..., 8192 elements
func newSizeClassTable(minElems int, elemSize uintptr, ceilingBytes int) *sizeClassTable {
	if minElems < 1 {
		minElems = 1
	}
	table := &sizeClassTable{caps: make([]int, 0, 16)}

	for c := minElems; len(table.caps) < maxClasses; c *= 2 {
		table.caps = append(table.caps, c)
		if uint64(c)*uint64(elemSize) >= uint64(ceilingBytes) {
			break
		}
	}
	return table
}

// classFor returns the smallest class whose capacity fits n.
// Returns numClasses() for requests larger than every class.
func (t *sizeClassTable) classFor(n int) int {
	i, _ := slices.BinarySearch(t.caps, n)
	return i
}

// classOfCap returns the class whose capacity is exactly c, or -1.
func (t *sizeClassTable) classOfCap(c int) int {
	i, found := slices.BinarySearch(t.caps, c)
	if !found {
		return -1
	}
	return i
}

func (t *sizeClassTable) numClasses() int {
	return len(t.caps)
}

// elemSizeOf reports the size in bytes of one T.
func elemSizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
