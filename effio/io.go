// Package effio provides IO, a deferred computation that may perform side
// effects.
//
// An IO wraps a zero-argument thunk. Building or composing IO values never
// calls the thunk; only [IO.Run] does, and it does so on every call. The same
// IO run twice performs its effects twice.
//
// Two variants exist. TagIO marks a thunk that may have observable effects.
// TagPure marks a thunk known to be free of effects, such as one built by
// [Pure]. [Map] keeps the variant of its input, [Bind] always yields TagIO.
package effio

import (
	"errors"

	"go.uber.org/zap"

	"github.com/on-the-ground/funtom_go/internal/logging"
	"github.com/on-the-ground/funtom_go/match"
)

// Variant tags.
const (
	TagIO   match.Tag = "IO"
	TagPure match.Tag = "Pure"
)

// ErrNilThunk is the panic value of New and PureFunc when given a nil thunk.
var ErrNilThunk = errors.New("effio: thunk must not be nil")

var _ match.Unpacker[func() int] = IO[int]{}

// IO is a deferred computation producing a T.
// The zero IO has no thunk; running it panics.
type IO[T any] struct {
	tag   match.Tag
	thunk func() T
}

// New wraps an effectful thunk. It panics with ErrNilThunk if thunk is nil.
func New[T any](thunk func() T) IO[T] {
	return newIO(TagIO, thunk)
}

// PureFunc wraps a thunk the caller guarantees to be free of effects.
// It panics with ErrNilThunk if thunk is nil.
func PureFunc[T any](thunk func() T) IO[T] {
	return newIO(TagPure, thunk)
}

// Pure lifts an already computed value.
func Pure[T any](v T) IO[T] {
	return newIO(TagPure, func() T { return v })
}

func newIO[T any](tag match.Tag, thunk func() T) IO[T] {
	if thunk == nil {
		panic(ErrNilThunk)
	}
	return IO[T]{tag: tag, thunk: thunk}
}

// Tag implements match.Tagged.
func (io IO[T]) Tag() match.Tag {
	return io.tag
}

// Unpack implements match.Unpacker. The payload is the thunk itself, not
// its result; unpacking never runs it.
func (io IO[T]) Unpack() func() T {
	return io.thunk
}

// IsPure reports whether io is of the TagPure variant.
func (io IO[T]) IsPure() bool {
	return io.tag == TagPure
}

// Run calls the thunk and returns its result. Every call runs the thunk
// again.
func (io IO[T]) Run() T {
	logging.L().Debug("effio: run", zap.Stringer("tag", io.tag))
	return io.thunk()
}

// Bind defers f after io. Running the result runs io, passes its value to
// f and runs the IO that f returns.
func Bind[A, B any](io IO[A], f func(A) IO[B]) IO[B] {
	return New(func() B {
		return f(io.Run()).Run()
	})
}

// Map defers f after io and keeps the variant of io.
func Map[A, B any](io IO[A], f func(A) B) IO[B] {
	return match.Match(io, match.Cases[func() A, IO[B]]().
		When(TagPure, func(thunk func() A) IO[B] {
			return PureFunc(func() B { return f(thunk()) })
		}).
		When(TagIO, func(thunk func() A) IO[B] {
			return New(func() B { return f(thunk()) })
		}),
	)
}

// Then runs a and then b, keeping the result of b.
func Then[A, B any](a IO[A], b IO[B]) IO[B] {
	return Bind(a, func(A) IO[B] { return b })
}

// Join collapses an IO producing an IO into one that runs both.
func Join[T any](ioio IO[IO[T]]) IO[T] {
	return Bind(ioio, func(io IO[T]) IO[T] { return io })
}

// RunAll runs ioio and the IO it produces, returning the inner value.
func RunAll[T any](ioio IO[IO[T]]) T {
	return Join(ioio).Run()
}

// Sequence runs ios from first to last and collects their results.
func Sequence[T any](ios []IO[T]) IO[[]T] {
	return New(func() []T {
		res := make([]T, 0, len(ios))
		for _, io := range ios {
			res = append(res, io.Run())
		}
		return res
	})
}

// Binding : (A -> IO[B]) -> IO[A] -> IO[B].
func Binding[A, B any](f func(A) IO[B]) func(IO[A]) IO[B] {
	return func(io IO[A]) IO[B] {
		return Bind(io, f)
	}
}

// Mapping : (A -> B) -> IO[A] -> IO[B].
func Mapping[A, B any](f func(A) B) func(IO[A]) IO[B] {
	return func(io IO[A]) IO[B] {
		return Map(io, f)
	}
}
