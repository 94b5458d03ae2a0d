package maybe_test

import (
	"strconv"
	"testing"

	"github.com/on-the-ground/funtom_go/match"
	"github.com/on-the-ground/funtom_go/maybe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func half(n int) maybe.Maybe[int] {
	if n%2 != 0 {
		return maybe.Nothing[int]()
	}
	return maybe.Just(n / 2)
}

func TestBind(t *testing.T) {
	assert.Equal(t, maybe.Just(4), maybe.Bind(maybe.Just(8), half))
	assert.Equal(t, maybe.Nothing[int](), maybe.Bind(maybe.Just(7), half))

	called := false
	res := maybe.Bind(maybe.Nothing[int](), func(n int) maybe.Maybe[int] {
		called = true
		return maybe.Just(n)
	})
	assert.True(t, res.IsNothing())
	assert.False(t, called, "Nothing must short-circuit")
}

func TestBindChain(t *testing.T) {
	res := maybe.Bind(maybe.Bind(maybe.Bind(maybe.Just(40), half), half), half)
	assert.Equal(t, maybe.Just(5), res)

	res = maybe.Bind(maybe.Bind(maybe.Bind(maybe.Just(20), half), half), half)
	assert.Equal(t, maybe.Nothing[int](), res)
}

func TestMap(t *testing.T) {
	assert.Equal(t, maybe.Just("5"), maybe.Map(maybe.Just(5), strconv.Itoa))
	assert.Equal(t, maybe.Nothing[string](), maybe.Map(maybe.Nothing[int](), strconv.Itoa))

	// Zero results are values, not absence.
	assert.Equal(t, maybe.Just(0), maybe.Map(maybe.Just(3), func(int) int { return 0 }))
	assert.Equal(t, maybe.Just(false), maybe.Map(maybe.Just(3), func(int) bool { return false }))

	// Absent results collapse.
	res := maybe.Map(maybe.Just(3), func(int) *int { return nil })
	assert.True(t, res.IsNothing())
}

func TestMapNonZero(t *testing.T) {
	assert.Equal(t, maybe.Just(6), maybe.MapNonZero(maybe.Just(3), func(n int) int { return n * 2 }))
	assert.True(t, maybe.MapNonZero(maybe.Just(3), func(int) int { return 0 }).IsNothing())
	assert.True(t, maybe.MapNonZero(maybe.Just("x"), func(string) string { return "" }).IsNothing())
	assert.True(t, maybe.MapNonZero(maybe.Just(1), func(int) bool { return false }).IsNothing())
	assert.True(t, maybe.MapNonZero(maybe.Nothing[int](), func(n int) int { return n + 1 }).IsNothing())
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, maybe.Just(2), maybe.Just(2).Filter(even))
	assert.Equal(t, maybe.Nothing[int](), maybe.Just(3).Filter(even))
	assert.Equal(t, maybe.Nothing[int](), maybe.Nothing[int]().Filter(even))
}

func TestFold(t *testing.T) {
	sum := func(acc, n int) int { return acc + n }
	assert.Equal(t, 15, maybe.Fold(maybe.Just(5), sum, 10))
	assert.Equal(t, 10, maybe.Fold(maybe.Nothing[int](), sum, 10))

	join := func(acc string, n int) string { return acc + strconv.Itoa(n) }
	assert.Equal(t, "n=3", maybe.Fold(maybe.Just(3), join, "n="))
}

func TestExistsAndContains(t *testing.T) {
	positive := func(n int) bool { return n > 0 }
	assert.True(t, maybe.Just(1).Exists(positive))
	assert.False(t, maybe.Just(-1).Exists(positive))
	assert.False(t, maybe.Nothing[int]().Exists(positive))

	assert.True(t, maybe.Contains(maybe.Just(5), 5))
	assert.False(t, maybe.Contains(maybe.Just(5), 6))
	assert.False(t, maybe.Contains(maybe.Nothing[int](), 0))
}

func TestEquals(t *testing.T) {
	assert.True(t, maybe.Equals(maybe.Just(5), maybe.Just(5)))
	assert.False(t, maybe.Equals(maybe.Just(5), maybe.Just(6)))
	assert.True(t, maybe.Equals(maybe.Nothing[int](), maybe.Nothing[int]()))
	assert.False(t, maybe.Equals(maybe.Just(5), maybe.Nothing[int]()))
	assert.False(t, maybe.Equals(maybe.Nothing[int](), maybe.Just(5)))

	sameLen := func(a, b []int) bool { return len(a) == len(b) }
	assert.True(t, maybe.EqualsFunc(maybe.Just([]int{1}), maybe.Just([]int{2}), sameLen))
	assert.False(t, maybe.EqualsFunc(maybe.Just([]int{1}), maybe.Nothing[[]int](), sameLen))
}

func TestGet(t *testing.T) {
	assert.Equal(t, 7, maybe.Just(7).Get())
	assert.Equal(t, 0, maybe.Nothing[int]().Get())
	assert.Nil(t, maybe.Nothing[*int]().Get())

	v, ok := maybe.Just("a").Value()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	_, ok = maybe.Nothing[string]().Value()
	assert.False(t, ok)

	assert.Equal(t, 0, maybe.Nothing[int]().GetOrElse(0))
	assert.Equal(t, 7, maybe.Just(7).GetOrElse(0))
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, maybe.Just(1), maybe.Just(1).OrElse(maybe.Just(2)))
	assert.Equal(t, maybe.Just(2), maybe.Nothing[int]().OrElse(maybe.Just(2)))
}

func TestToSlice(t *testing.T) {
	assert.Equal(t, []int{5}, maybe.Just(5).ToSlice())
	assert.Equal(t, []int{}, maybe.Nothing[int]().ToSlice())
}

func TestFromNullable(t *testing.T) {
	assert.True(t, maybe.FromNullable[*int](nil).IsNothing())
	assert.True(t, maybe.FromNullable[error](nil).IsNothing())
	assert.True(t, maybe.FromNullable[map[string]int](nil).IsNothing())
	assert.Equal(t, maybe.Just(5), maybe.FromNullable(5))

	n := 3
	assert.Equal(t, maybe.Just(3), maybe.FromPtr(&n))
	assert.True(t, maybe.FromPtr[int](nil).IsNothing())

	m := map[string]int{"a": 1}
	v, ok := m["a"]
	assert.Equal(t, maybe.Just(1), maybe.FromOk(v, ok))
	v, ok = m["b"]
	assert.True(t, maybe.FromOk(v, ok).IsNothing())
}

func TestJustNeverWrapsAbsence(t *testing.T) {
	var p *int
	assert.True(t, maybe.Just(p).IsNothing())
	assert.Equal(t, maybe.Nothing[int](), maybe.Maybe[int]{})
}

func TestString(t *testing.T) {
	assert.Equal(t, "Just(5)", maybe.Just(5).String())
	assert.Equal(t, "Just(abc)", maybe.Just("abc").String())
	assert.Equal(t, "Nothing", maybe.Nothing[int]().String())
}

func TestDispatchesThroughMatch(t *testing.T) {
	describe := match.Cases[int, string]().
		When(maybe.TagJust, func(n int) string { return "got " + strconv.Itoa(n) }).
		When(maybe.TagNothing, func(int) string { return "none" })

	assert.Equal(t, "got 3", match.Match(maybe.Just(3), describe))
	assert.Equal(t, "none", match.Match(maybe.Nothing[int](), describe))
	require.NoError(t, match.Exhaustive(describe, maybe.TagJust, maybe.TagNothing))

	// Unmatched Maybe passes through unchanged.
	onlyJust := match.Cases[int, maybe.Maybe[int]]().
		When(maybe.TagJust, func(n int) maybe.Maybe[int] { return maybe.Just(n + 1) })
	assert.Equal(t, maybe.Just(2), match.Match(maybe.Just(1), onlyJust))
	assert.Equal(t, maybe.Nothing[int](), match.Match(maybe.Nothing[int](), onlyJust))
}

func TestMatch(t *testing.T) {
	onJust := func(n int) string { return strconv.Itoa(n) }
	onNothing := func() string { return "-" }
	assert.Equal(t, "4", maybe.Match(maybe.Just(4), onJust, onNothing))
	assert.Equal(t, "-", maybe.Match(maybe.Nothing[int](), onJust, onNothing))
}

func TestLiftA2AndFlatten(t *testing.T) {
	add := maybe.LiftA2(func(a, b int) int { return a + b })
	assert.Equal(t, maybe.Just(3), add(maybe.Just(1), maybe.Just(2)))
	assert.True(t, add(maybe.Nothing[int](), maybe.Just(2)).IsNothing())
	assert.True(t, add(maybe.Just(1), maybe.Nothing[int]()).IsNothing())

	assert.Equal(t, maybe.Just(1), maybe.Flatten(maybe.Just(maybe.Just(1))))
	assert.True(t, maybe.Flatten(maybe.Just(maybe.Nothing[int]())).IsNothing())
	assert.True(t, maybe.Flatten(maybe.Nothing[maybe.Maybe[int]]()).IsNothing())
}

func TestCurried(t *testing.T) {
	m := maybe.Just(10)

	assert.Equal(t, maybe.Just(5), maybe.Binding(half)(m))
	assert.Equal(t, maybe.Just("10"), maybe.Mapping(strconv.Itoa)(m))
	assert.True(t, maybe.Filtering(func(n int) bool { return n > 10 })(m).IsNothing())
	assert.Equal(t, 11, maybe.Folding(func(s, n int) int { return s + n }, 1)(m))
	assert.Equal(t, 0, maybe.Defaulting(0)(maybe.Nothing[int]()))
	assert.True(t, maybe.Containing(10)(m))
}
