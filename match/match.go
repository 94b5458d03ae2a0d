// Package match dispatches tagged values to handlers keyed by variant tag.
//
// A value takes part in dispatch by implementing [Tagged]. Values that also
// implement [Unpacker] supply their own payload to the matching handler, so
// the dispatcher never needs to know how a variant stores its fields.
//
// Resolution order for [On] and [Match]:
//
//  1. the value unpacks itself and the table has a handler for its tag;
//  2. the table has a fallback, which is called with no payload;
//  3. nothing matches: [On] reports false, [Match] hands the value back.
//
// A miss is never an error.
package match

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/on-the-ground/funtom_go/internal/logging"
	"github.com/on-the-ground/funtom_go/shared/helper"
)

// Tag names one variant of a sum type.
type Tag string

// Fallback is the reserved key for the fallback handler in FromMap.
const Fallback Tag = "_"

// Tagged is implemented by every value that can be dispatched on.
type Tagged interface {
	Tag() Tag
}

// Unpacker is a Tagged value that hands its payload to the handler selected
// for its tag. Variants without a payload return the zero P.
type Unpacker[P any] interface {
	Tagged
	Unpack() P
}

// Handler receives the payload of the matched variant.
type Handler[P, R any] func(P) R

// Table maps tags to handlers, with an optional fallback.
// The zero Table is empty and usable.
type Table[P, R any] struct {
	cases    map[Tag]Handler[P, R]
	fallback func() R
}

// Cases starts an empty table.
func Cases[P, R any]() Table[P, R] {
	return Table[P, R]{}
}

// FromMap builds a table from a plain map. The entry under Fallback, if any,
// becomes the fallback and is called with the zero P.
func FromMap[P, R any](m map[Tag]Handler[P, R]) Table[P, R] {
	t := Table[P, R]{}
	for tag, h := range m {
		if tag == Fallback {
			t = t.Otherwise(func() R {
				var zero P
				return h(zero)
			})
			continue
		}
		t = t.When(tag, h)
	}
	return t
}

// When returns a copy of t with h registered for tag.
func (t Table[P, R]) When(tag Tag, h Handler[P, R]) Table[P, R] {
	cases := make(map[Tag]Handler[P, R], len(t.cases)+1)
	for k, v := range t.cases {
		cases[k] = v
	}
	cases[tag] = h
	return Table[P, R]{cases: cases, fallback: t.fallback}
}

// Otherwise returns a copy of t with f as the fallback.
func (t Table[P, R]) Otherwise(f func() R) Table[P, R] {
	return Table[P, R]{cases: t.cases, fallback: f}
}

// Has reports whether t has a handler for tag.
func (t Table[P, R]) Has(tag Tag) bool {
	_, ok := t.cases[tag]
	return ok
}

// HasFallback reports whether t has a fallback.
func (t Table[P, R]) HasFallback() bool {
	return t.fallback != nil
}

// Tags returns the registered tags in sorted order.
func (t Table[P, R]) Tags() []Tag {
	tags := make([]Tag, 0, len(t.cases))
	for tag := range t.cases {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// On dispatches v against t. It reports false when neither a handler nor a
// fallback applied.
func On[P, R any](v Tagged, t Table[P, R]) (R, bool) {
	if v != nil {
		if u, ok := v.(Unpacker[P]); ok {
			if h, ok := t.cases[v.Tag()]; ok {
				return h(u.Unpack()), true
			}
		}
	}

	if t.fallback != nil {
		return t.fallback(), true
	}

	logging.L().Debug("match: no handler", zap.Stringer("tag", tagOf(v)))
	var zero R
	return zero, false
}

// Match dispatches v against t. On a miss without fallback it returns v
// itself when v is an R, and the zero R otherwise.
func Match[P, R any](v Tagged, t Table[P, R]) R {
	if res, ok := On(v, t); ok {
		return res
	}
	res, _ := helper.TypedValueOf[R](v)
	return res
}

var ErrNotExhaustive = fmt.Errorf("match table is not exhaustive")

// Exhaustive checks that t handles every tag in tags. A table with a
// fallback is always exhaustive.
func Exhaustive[P, R any](t Table[P, R], tags ...Tag) error {
	if t.fallback != nil {
		return nil
	}
	var missing []Tag
	for _, tag := range tags {
		if !t.Has(tag) {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %v", ErrNotExhaustive, missing)
	}
	return nil
}

func (t Tag) String() string {
	return string(t)
}

func tagOf(v Tagged) Tag {
	if v == nil {
		return ""
	}
	return v.Tag()
}
