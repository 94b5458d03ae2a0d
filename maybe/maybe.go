// Package maybe provides Maybe, an optional value that is either Just a
// payload or Nothing.
//
// A Maybe is an immutable value. Every operation returns a new Maybe and
// Nothing short-circuits: functions passed to Bind, Map or Filter are never
// called on it. Maybe takes part in tag dispatch through [match.Unpacker],
// and its operations are themselves implemented as dispatch tables.
//
// Just never wraps an absent value: a nil pointer, map, slice, channel,
// function or interface passed to [Just] yields Nothing, and so does a
// mapping function that returns one.
package maybe

import (
	"fmt"

	"github.com/on-the-ground/funtom_go/match"
	"github.com/on-the-ground/funtom_go/shared/helper"
)

// Variant tags.
const (
	TagJust    match.Tag = "Just"
	TagNothing match.Tag = "Nothing"
)

var _ match.Unpacker[int] = Maybe[int]{}

// Maybe holds either one value of type T or nothing.
// The zero Maybe is Nothing.
type Maybe[T any] struct {
	just  bool
	value T
}

// Just wraps v. An absent v yields Nothing.
func Just[T any](v T) Maybe[T] {
	if helper.IsNil(v) {
		return Nothing[T]()
	}
	return Maybe[T]{just: true, value: v}
}

// Nothing returns the empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromNullable returns Nothing for an absent v and Just(v) otherwise.
func FromNullable[T any](v T) Maybe[T] {
	return Just(v)
}

// FromPtr dereferences p, or returns Nothing for a nil p.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// FromOk adapts the comma-ok idiom.
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

// Tag implements match.Tagged.
func (m Maybe[T]) Tag() match.Tag {
	if m.just {
		return TagJust
	}
	return TagNothing
}

// Unpack implements match.Unpacker. Nothing unpacks to the zero T.
func (m Maybe[T]) Unpack() T {
	return m.value
}

func (m Maybe[T]) IsJust() bool {
	return m.just
}

func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Get returns the payload, or the zero T for Nothing.
func (m Maybe[T]) Get() T {
	return Match(m, func(v T) T { return v }, zero[T])
}

// Value returns the payload and whether there was one.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.just
}

// GetOrElse returns the payload, or d for Nothing.
func (m Maybe[T]) GetOrElse(d T) T {
	return Match(m, func(v T) T { return v }, func() T { return d })
}

// OrElse returns m if it is Just, and other otherwise.
func (m Maybe[T]) OrElse(other Maybe[T]) Maybe[T] {
	if m.just {
		return m
	}
	return other
}

// Filter keeps the payload only when p holds for it.
func (m Maybe[T]) Filter(p func(T) bool) Maybe[T] {
	return Bind(m, func(v T) Maybe[T] {
		if p(v) {
			return m
		}
		return Nothing[T]()
	})
}

// Exists reports whether m is Just and p holds for its payload.
func (m Maybe[T]) Exists(p func(T) bool) bool {
	return Match(m, p, func() bool { return false })
}

// ToSlice returns a one-element slice for Just and an empty slice for
// Nothing.
func (m Maybe[T]) ToSlice() []T {
	return Match(m, func(v T) []T { return []T{v} }, func() []T { return []T{} })
}

// String renders Just(v) or Nothing.
func (m Maybe[T]) String() string {
	return Match(m,
		func(v T) string { return fmt.Sprintf("%s(%v)", TagJust, v) },
		func() string { return string(TagNothing) },
	)
}

func zero[T any]() T {
	var z T
	return z
}
