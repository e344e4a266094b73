// Package order supplies element comparisons for vector.CompareFunc,
// vector.EqualFunc and their stack counterparts.
//
// Strings compare by byte value under vector.Compare. A Collator compares
// them the way a reader of a given language expects instead:
//
//	c, err := order.NewCollator("sv", order.Options{})
//	if err != nil {
//	    return err
//	}
//	vector.CompareFunc(a, b, c.Compare)
//
// Collation rules come from golang.org/x/text/collate.
package order

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/joshuapare/vectorkit/vector"
)

// ErrBadTag indicates a language tag that cannot be parsed.
var ErrBadTag = errors.New("order: invalid language tag")

// Options tunes a Collator.
type Options struct {
	// IgnoreCase treats "a" and "A" as equal.
	IgnoreCase bool

	// IgnoreDiacritics treats "e" and "é" as equal.
	IgnoreDiacritics bool

	// Numeric orders digit runs by value, so "a2" < "a10".
	Numeric bool
}

func (o Options) collateOptions() []collate.Option {
	var opts []collate.Option
	if o.IgnoreCase {
		opts = append(opts, collate.IgnoreCase)
	}
	if o.IgnoreDiacritics {
		opts = append(opts, collate.IgnoreDiacritics)
	}
	if o.Numeric {
		opts = append(opts, collate.Numeric)
	}
	return opts
}

// Collator compares strings under the rules of one language.
//
// A Collator reuses internal buffers and is not safe for concurrent use.
type Collator struct {
	tag language.Tag
	c   *collate.Collator
}

// NewCollator parses tag (BCP 47, e.g. "en", "de-AT", "sv") and returns a
// collator for it.
func NewCollator(tag string, opts Options) (*Collator, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadTag, tag, err)
	}
	return ForTag(t, opts), nil
}

// ForTag returns a collator for an already parsed tag.
func ForTag(tag language.Tag, opts Options) *Collator {
	return &Collator{tag: tag, c: collate.New(tag, opts.collateOptions()...)}
}

// Tag returns the language the collator was built for.
func (c *Collator) Tag() language.Tag { return c.tag }

// Compare returns -1, 0 or +1 as a sorts before, with or after b.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}

// Equal reports whether a and b collate equal.
func (c *Collator) Equal(a, b string) bool {
	return c.Compare(a, b) == 0
}

// Sort orders the elements of v in place. Elements are exchanged by plain
// assignment, so v's Traits are not consulted.
func (c *Collator) Sort(v *vector.Vector[string]) {
	slices.SortStableFunc(v.Data(), c.Compare)
}
