package u16view

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPtrLen(t *testing.T) {
	buf := []uint16{'a', 'b', 'c'}
	v := FromPtrLen(&buf[0], 2)
	require.Equal(t, 2, v.Size())
	require.Same(t, &buf[0], &v.Data()[0])
	assert.False(t, v.IsNull())
	assert.Equal(t, "ab", v.String())

	null := FromPtrLen[uint16](nil, 0)
	assert.True(t, null.IsNull())
	assert.True(t, null.IsEmpty())
	assert.Nil(t, null.Data())

	assert.PanicsWithValue(t, "u16view: nil pointer with non-zero length", func() { FromPtrLen[uint16](nil, 1) })
	assert.PanicsWithValue(t, "u16view: negative length", func() { FromPtrLen(&buf[0], -1) })
}

func TestFromPtrLenKeepsPointerAndLength(t *testing.T) {
	condition := func(buf []uint16, n uint8) bool {
		if len(buf) == 0 {
			return true
		}
		k := int(n) % (len(buf) + 1)
		v := FromPtrLen(&buf[0], k)
		if v.Size() != k || v.IsNull() {
			return false
		}
		return k == 0 || &v.Data()[0] == &buf[0]
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestNullAndEmpty(t *testing.T) {
	var null View
	assert.True(t, null.IsNull())
	assert.True(t, null.IsEmpty())

	empty := From([]uint16{})
	assert.False(t, empty.IsNull())
	assert.True(t, empty.IsEmpty())

	assert.True(t, null.Equal(empty))
	assert.False(t, Of("").IsNull())
}

func TestLeftRightClamp(t *testing.T) {
	v := Of("hello")
	for _, n := range []int{-1, 5, 6, math.MaxInt, math.MinInt} {
		assert.True(t, v.Left(n).Equal(v), "Left(%d)", n)
		assert.True(t, v.Right(n).Equal(v), "Right(%d)", n)
	}
	assert.Equal(t, "he", v.Left(2).String())
	assert.Equal(t, "lo", v.Right(2).String())
	assert.True(t, v.Left(0).IsEmpty())
	assert.False(t, v.Left(0).IsNull())
	assert.Equal(t, 2, cap(v.Left(2).Data()))
}

func TestLeftRightNeverPanic(t *testing.T) {
	condition := func(s string, n int) bool {
		v := Of(s)
		l, r := v.Left(n), v.Right(n)
		return l.Size() <= v.Size() && r.Size() <= v.Size() && l.Size() == r.Size()
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestMid(t *testing.T) {
	v := Of("hello")
	assert.Equal(t, "ell", v.Mid(1, 3).String())
	assert.Equal(t, "llo", v.Mid(2, -1).String())
	assert.Equal(t, "llo", v.Mid(2, 100).String())
	assert.True(t, v.Mid(0, -1).Equal(v))

	assert.True(t, v.Mid(6, -1).IsNull())
	end := v.Mid(5, -1)
	assert.True(t, end.IsEmpty())
	assert.False(t, end.IsNull())

	assert.Equal(t, "he", v.Mid(-2, 4).String())
	assert.True(t, v.Mid(-2, 1).IsNull())
	assert.True(t, v.Mid(-1, 10).Equal(v))
	assert.True(t, v.Mid(-1, -1).Equal(v))

	var null View
	assert.True(t, null.Mid(0, -1).IsNull())
	assert.True(t, null.Mid(1, 1).IsNull())
}

func TestMidRoundTrip(t *testing.T) {
	condition := func(buf []uint16) bool {
		v := From(buf)
		w := v.Mid(0, v.Size())
		return w.Equal(v) && w.Size() == v.Size() && w.IsNull() == v.IsNull()
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestStrictSlicing(t *testing.T) {
	v := Of("hello")
	assert.Equal(t, "hel", v.First(3).String())
	assert.Equal(t, "llo", v.Last(3).String())
	assert.Equal(t, "lo", v.Sliced(3).String())
	assert.Equal(t, "el", v.SlicedN(1, 2).String())
	assert.Equal(t, "hell", v.Chopped(1).String())
	assert.True(t, v.Sliced(5).IsEmpty())

	assert.PanicsWithValue(t, "u16view: First length out of range", func() { v.First(6) })
	assert.PanicsWithValue(t, "u16view: Last length out of range", func() { v.Last(-1) })
	assert.PanicsWithValue(t, "u16view: Sliced position out of range", func() { v.Sliced(6) })
	assert.PanicsWithValue(t, "u16view: SlicedN range out of bounds", func() { v.SlicedN(4, 2) })
	assert.PanicsWithValue(t, "u16view: SlicedN negative argument", func() { v.SlicedN(-1, 2) })
	assert.PanicsWithValue(t, "u16view: Chopped length out of range", func() { v.Chopped(6) })
}

func TestTruncateChop(t *testing.T) {
	buf := []uint16{'a', 'b', 'c', 'd'}
	v := From(buf)
	v.Truncate(3)
	assert.Equal(t, "abc", v.String())
	v.Chop(1)
	assert.Equal(t, "ab", v.String())
	assert.Equal(t, []uint16{'a', 'b', 'c', 'd'}, buf)

	assert.Panics(t, func() { v.Truncate(3) })
	assert.Panics(t, func() { v.Chop(3) })
}

func TestAccessors(t *testing.T) {
	v := Of("xyz")
	assert.Equal(t, Char('x'), v.Front())
	assert.Equal(t, Char('z'), v.Back())
	assert.Equal(t, Char('y'), v.At(1))
	assert.Equal(t, 3, v.Length())
	assert.Panics(t, func() { v.At(3) })
	assert.Panics(t, func() { View{}.Front() })
	assert.Panics(t, func() { View{}.Back() })
}

func TestTrimmed(t *testing.T) {
	assert.Equal(t, "hi", Of(" \t hi\n ").Trimmed().String())

	blank := Of("  \t\r\n ").Trimmed()
	assert.True(t, blank.IsEmpty())
	assert.False(t, blank.IsNull())

	assert.True(t, View{}.Trimmed().IsNull())
	assert.Equal(t, "a b", Of("a b").Trimmed().String())
}

func TestIterators(t *testing.T) {
	v := Of("ab😀")
	var units []Char
	for i, c := range v.All() {
		assert.Equal(t, v.At(i), c)
		units = append(units, c)
	}
	require.Len(t, units, 4)

	var back []int
	for i := range v.Backward() {
		back = append(back, i)
	}
	assert.Equal(t, []int{3, 2, 1, 0}, back)

	var idx []int
	var runes []rune
	for i, r := range From([]uint16{'a', 0xD83D, 0xDE00, 0xDC00}).Runes() {
		idx = append(idx, i)
		runes = append(runes, r)
	}
	assert.Equal(t, []int{0, 1, 3}, idx)
	assert.Equal(t, []rune{'a', 0x1F600, 0xFFFD}, runes)
}

func TestChar(t *testing.T) {
	u := FromUcs4(0x1F600)
	require.Equal(t, 2, u.Size())
	v := u.View()
	assert.True(t, v.At(0).IsHighSurrogate())
	assert.True(t, v.At(1).IsLowSurrogate())
	assert.Equal(t, rune(0x1F600), SurrogateToUcs4(v.At(0), v.At(1)))
	assert.Equal(t, "😀", v.String())

	for _, bad := range []rune{-1, 0xD800, 0x110000} {
		b := FromUcs4(bad)
		assert.Equal(t, 1, b.Size())
		assert.Equal(t, Char(0xFFFD), b.View().Front())
	}
	a := FromUcs4('a')
	assert.Equal(t, "a", a.View().String())

	assert.Equal(t, Char('a'), Char('A').ToCaseFolded())
	assert.Equal(t, Char(0xD800), Char(0xD800).ToCaseFolded())
	assert.Equal(t, Char(0x130), Char(0x130).ToCaseFolded())
	assert.Equal(t, Char(0x131), Char(0x131).ToCaseFolded())
	assert.Equal(t, Char('k'), Char(0x212A).ToCaseFolded())
	assert.True(t, Char(' ').IsSpace())
	assert.True(t, Char(0).IsNull())
	assert.True(t, RequiresSurrogates(0x10000))
	assert.False(t, RequiresSurrogates(0xFFFF))
}
