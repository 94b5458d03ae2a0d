// Package pure holds helpers for pure functions: composition, piping,
// currying, and bounded memoization.
//
// Combinators are free generic functions; they never extend the types they
// operate on. Pipe and Compose read left to right:
//
//	pure.Pipe2(maybe.Just(4), maybe.Mapping(double), maybe.Defaulting(0))
//
// The Tableize family memoizes a pure function by its arguments in a
// two-generation trie. Arguments must be comparable or implement
// fmt.Stringer. Only memoize functions that are referentially transparent.
package pure
