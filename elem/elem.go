// Package elem manages the lifetime of individual element slots.
//
// A slot is either live (holds a constructed element) or uninitialized
// (holds the zero value and must not be read as an element). Traits move a
// slot between the two states; containers call them for every transition
// and never assign into storage directly.
//
// Destroy must not fail. Construct may, and containers are written so that a
// failed Construct leaves them in a valid state.
package elem

// Traits constructs and destroys elements in caller-owned slots.
type Traits[T any] interface {
	// Construct makes *slot a live copy of src. slot must be uninitialized.
	Construct(slot *T, src T) error

	// Destroy tears down the live element in *slot and leaves the zero value.
	Destroy(slot *T)
}

// Releaser is implemented by element types that hold resources beyond
// their memory. Cloning calls Release when a slot is destroyed.
type Releaser interface {
	Release()
}

// Cloner is implemented by element types that know how to deep-copy
// themselves.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Plain copies by assignment and destroys by zeroing. It never fails.
type Plain[T any] struct{}

// Construct assigns src to *slot.
func (Plain[T]) Construct(slot *T, src T) error {
	*slot = src
	return nil
}

// Destroy zeroes *slot.
func (Plain[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// Funcs builds Traits from functions. A nil Copy assigns; a nil Release does
// nothing beyond zeroing the slot.
type Funcs[T any] struct {
	Copy    func(src T) (T, error)
	Release func(v *T)
}

// Construct copies src through Copy.
func (f Funcs[T]) Construct(slot *T, src T) error {
	if f.Copy == nil {
		*slot = src
		return nil
	}
	v, err := f.Copy(src)
	if err != nil {
		return err
	}
	*slot = v
	return nil
}

// Destroy runs Release and zeroes the slot.
func (f Funcs[T]) Destroy(slot *T) {
	if f.Release != nil {
		f.Release(slot)
	}
	var zero T
	*slot = zero
}

// Cloning constructs through the element's Clone method and destroys through
// Release when the element implements Releaser.
type Cloning[T Cloner[T]] struct{}

// Construct stores src.Clone() in *slot.
func (Cloning[T]) Construct(slot *T, src T) error {
	v, err := src.Clone()
	if err != nil {
		return err
	}
	*slot = v
	return nil
}

// Destroy releases and zeroes *slot.
func (Cloning[T]) Destroy(slot *T) {
	if r, ok := any(*slot).(Releaser); ok {
		r.Release()
	}
	var zero T
	*slot = zero
}

// Compile-time interface checks
var (
	_ Traits[int] = Plain[int]{}
	_ Traits[int] = Funcs[int]{}
)
