package maybe

// The functions below take their configuration first and return a
// transformation of Maybe values, for use with pure.Pipe and pure.Compose.

// Binding : (A -> Maybe[B]) -> Maybe[A] -> Maybe[B].
func Binding[A, B any](f func(A) Maybe[B]) func(Maybe[A]) Maybe[B] {
	return func(m Maybe[A]) Maybe[B] {
		return Bind(m, f)
	}
}

// Mapping : (A -> B) -> Maybe[A] -> Maybe[B].
func Mapping[A, B any](f func(A) B) func(Maybe[A]) Maybe[B] {
	return func(m Maybe[A]) Maybe[B] {
		return Map(m, f)
	}
}

// Filtering : (T -> bool) -> Maybe[T] -> Maybe[T].
func Filtering[T any](p func(T) bool) func(Maybe[T]) Maybe[T] {
	return func(m Maybe[T]) Maybe[T] {
		return m.Filter(p)
	}
}

// Folding : ((S, T) -> S, S) -> Maybe[T] -> S.
func Folding[T, S any](f func(S, T) S, state S) func(Maybe[T]) S {
	return func(m Maybe[T]) S {
		return Fold(m, f, state)
	}
}

// Defaulting : T -> Maybe[T] -> T.
func Defaulting[T any](d T) func(Maybe[T]) T {
	return func(m Maybe[T]) T {
		return m.GetOrElse(d)
	}
}

// Containing : T -> Maybe[T] -> bool.
func Containing[T comparable](x T) func(Maybe[T]) bool {
	return func(m Maybe[T]) bool {
		return Contains(m, x)
	}
}
