package pure

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ComparableOrStringer documents the accepted argument types of Tableize
// functions: comparable values, or fmt.Stringer values keyed by their type
// and text.
type ComparableOrStringer any

// TableizeI1O1 memoizes a pure one-argument function. At most 2*maxTableSize
// results are retained.
//
// The function must be referentially transparent; memoizing a function that
// reads the clock, the network or a random source returns stale results.
func TableizeI1O1[I1 ComparableOrStringer, O1 any](pureFn func(I1) O1, maxTableSize uint32) func(I1) O1 {
	t := tableize(func(args []ComparableOrStringer) result[O1, struct{}] {
		return result[O1, struct{}]{O1: pureFn(args[0].(I1))}
	}, maxTableSize)
	return func(i1 I1) O1 {
		return t(i1).O1
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](pureFn func(I1, I2) O1, maxTableSize uint32) func(I1, I2) O1 {
	t := tableize(func(args []ComparableOrStringer) result[O1, struct{}] {
		return result[O1, struct{}]{O1: pureFn(args[0].(I1), args[1].(I2))}
	}, maxTableSize)
	return func(i1 I1, i2 I2) O1 {
		return t(i1, i2).O1
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](pureFn func(I1, I2, I3) O1, maxTableSize uint32) func(I1, I2, I3) O1 {
	t := tableize(func(args []ComparableOrStringer) result[O1, struct{}] {
		return result[O1, struct{}]{O1: pureFn(args[0].(I1), args[1].(I2), args[2].(I3))}
	}, maxTableSize)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return t(i1, i2, i3).O1
	}
}

func TableizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](pureFn func(I1, I2, I3, I4) O1, maxTableSize uint32) func(I1, I2, I3, I4) O1 {
	t := tableize(func(args []ComparableOrStringer) result[O1, struct{}] {
		return result[O1, struct{}]{O1: pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))}
	}, maxTableSize)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return t(i1, i2, i3, i4).O1
	}
}

// TableizeI1O2 memoizes a pure one-argument function with two results, such
// as a (value, error) pair.
func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](pureFn func(I1) (O1, O2), maxTableSize uint32) func(I1) (O1, O2) {
	t := tableize(func(args []ComparableOrStringer) result[O1, O2] {
		return resultOf(pureFn(args[0].(I1)))
	}, maxTableSize)
	return func(i1 I1) (O1, O2) {
		return t(i1).unpack()
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](pureFn func(I1, I2) (O1, O2), maxTableSize uint32) func(I1, I2) (O1, O2) {
	t := tableize(func(args []ComparableOrStringer) result[O1, O2] {
		return resultOf(pureFn(args[0].(I1), args[1].(I2)))
	}, maxTableSize)
	return func(i1 I1, i2 I2) (O1, O2) {
		return t(i1, i2).unpack()
	}
}

type result[O1, O2 any] struct {
	O1 O1
	O2 O2
}

func resultOf[O1, O2 any](o1 O1, o2 O2) result[O1, O2] {
	return result[O1, O2]{O1: o1, O2: o2}
}

func (r result[O1, O2]) unpack() (O1, O2) {
	return r.O1, r.O2
}

// stringerKey identifies a non-comparable fmt.Stringer by its dynamic type and
// text. digest comes first so mismatching keys usually differ on it alone.
type stringerKey struct {
	digest uint64
	typ    reflect.Type
	text   string
}

// tableKey returns a trie key for arg. Comparable values are their own key;
// non-comparable Stringers are keyed by type and text.
func tableKey(arg ComparableOrStringer) Key {
	if arg == nil || reflect.ValueOf(arg).Comparable() {
		return arg
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		text := stringer.String()
		return stringerKey{
			digest: xxhash.Sum64String(text),
			typ:    reflect.TypeOf(arg),
			text:   text,
		}
	}
	panic(fmt.Sprintf("pure: %T is neither comparable nor a fmt.Stringer", arg))
}

func tableize[O1, O2 any](
	pureFn func([]ComparableOrStringer) result[O1, O2],
	maxTableSize uint32,
) func(...ComparableOrStringer) result[O1, O2] {
	memo := NewTrie[result[O1, O2]](maxTableSize)
	return func(args ...ComparableOrStringer) result[O1, O2] {
		keys := make([]Key, len(args))
		for i, arg := range args {
			keys[i] = tableKey(arg)
		}
		if res, ok := memo.Load(keys); ok {
			return res
		}
		res := pureFn(args)
		memo.Store(keys, res)
		return res
	}
}
