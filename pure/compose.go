package pure

// Identity returns its argument.
func Identity[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and returns a.
func Const[A, B any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Compose runs f, then g.
//
// Compose : (A -> B, B -> C) -> A -> C.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose3 runs f, g and h in that order.
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Pipe passes v through f.
func Pipe[A, B any](v A, f func(A) B) B {
	return f(v)
}

// Pipe2 passes v through f and then g.
func Pipe2[A, B, C any](v A, f func(A) B, g func(B) C) C {
	return g(f(v))
}

func Pipe3[A, B, C, D any](v A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(v)))
}

func Pipe4[A, B, C, D, E any](v A, f func(A) B, g func(B) C, h func(C) D, i func(D) E) E {
	return i(h(g(f(v))))
}

// Chain passes v through every f in order. All steps share one type.
func Chain[A any](v A, fs ...func(A) A) A {
	for _, f := range fs {
		v = f(v)
	}
	return v
}

// Curry2 : ((A, B) -> C) -> A -> B -> C.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 : ((A, B, C) -> D) -> A -> B -> C -> D.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return Curry2(func(b B, c C) D {
			return f(a, b, c)
		})
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Partial fixes the first argument of f.
func Partial[A, B, C any](f func(A, B) C, a A) func(B) C {
	return Curry2(f)(a)
}

// Flip swaps the arguments of f.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}
