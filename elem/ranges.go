package elem

import "fmt"

// CopyInto constructs dst[i] from src[i] for every i in index order.
// dst must be uninitialized and at least as long as src.
//
// If a construction fails, the already-constructed prefix of dst is
// destroyed, so dst is entirely uninitialized again when the error returns.
func CopyInto[T any](tr Traits[T], dst, src []T) error {
	return FillFunc(tr, dst[:len(src)], func(i int) T { return src[i] })
}

// Fill constructs every slot of dst as a copy of v, with the same rollback
// as CopyInto.
func Fill[T any](tr Traits[T], dst []T, v T) error {
	return FillFunc(tr, dst, func(int) T { return v })
}

// FillFunc constructs dst[i] from src(i) in index order, with the same
// rollback as CopyInto.
func FillFunc[T any](tr Traits[T], dst []T, src func(i int) T) error {
	for i := range dst {
		if err := tr.Construct(&dst[i], src(i)); err != nil {
			DestroyAll(tr, dst[:i])
			return fmt.Errorf("construct slot %d: %w", i, err)
		}
	}
	return nil
}

// DestroyAll destroys every slot in index order.
func DestroyAll[T any](tr Traits[T], slots []T) {
	for i := range slots {
		tr.Destroy(&slots[i])
	}
}
