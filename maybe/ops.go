package maybe

import (
	"github.com/on-the-ground/funtom_go/match"
	"github.com/on-the-ground/funtom_go/shared/helper"
)

// Match is the exhaustive eliminator: onJust receives the payload of Just,
// onNothing is called for Nothing.
func Match[T, R any](m Maybe[T], onJust func(T) R, onNothing func() R) R {
	return match.Match(m, match.Cases[T, R]().
		When(TagJust, onJust).
		Otherwise(onNothing),
	)
}

// Bind feeds the payload of Just into f. Nothing short-circuits.
func Bind[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	return Match(m, f, Nothing[B])
}

// Map applies f to the payload of Just. The result stays Just unless f
// returns an absent value.
func Map[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	return Bind(m, func(a A) Maybe[B] {
		return Just(f(a))
	})
}

// MapNonZero is Map that also turns a zero-valued result into Nothing, so
// 0, "" and false are treated like an absent value.
func MapNonZero[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	return Bind(m, func(a A) Maybe[B] {
		b := f(a)
		if helper.IsZero(b) {
			return Nothing[B]()
		}
		return Just(b)
	})
}

// Fold returns f(state, v) for Just(v) and state for Nothing.
func Fold[T, S any](m Maybe[T], f func(S, T) S, state S) S {
	return Match(m,
		func(v T) S { return f(state, v) },
		func() S { return state },
	)
}

// Contains reports whether m is Just(x).
func Contains[T comparable](m Maybe[T], x T) bool {
	return m.Exists(func(v T) bool { return v == x })
}

// Equals reports whether a and b are both Nothing, or both Just with equal
// payloads.
func Equals[T comparable](a, b Maybe[T]) bool {
	return EqualsFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualsFunc is Equals with a caller-supplied payload comparison.
func EqualsFunc[T any](a, b Maybe[T], eq func(T, T) bool) bool {
	return Match(a,
		func(x T) bool { return b.Exists(func(y T) bool { return eq(x, y) }) },
		b.IsNothing,
	)
}

// LiftA2 applies f when both a and b are Just.
func LiftA2[A, B, C any](f func(A, B) C) func(Maybe[A], Maybe[B]) Maybe[C] {
	return func(a Maybe[A], b Maybe[B]) Maybe[C] {
		return Bind(a, func(x A) Maybe[C] {
			return Map(b, func(y B) C { return f(x, y) })
		})
	}
}

// Flatten collapses one level of nesting.
func Flatten[T any](mm Maybe[Maybe[T]]) Maybe[T] {
	return Bind(mm, func(m Maybe[T]) Maybe[T] { return m })
}
