package u16view

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strs(parts []View) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.String()
	}
	return out
}

func TestSplitEmptyParts(t *testing.T) {
	v := Of("a,,b")
	assert.Equal(t, []string{"a", "", "b"}, strs(v.SplitChar(',', KeepEmptyParts, CaseSensitive)))
	assert.Equal(t, []string{"a", "b"}, strs(v.SplitChar(',', SkipEmptyParts, CaseSensitive)))
	assert.Equal(t, []string{"", "a", "", "b", ""}, strs(Of(",a,,b,").Split(Of(","), KeepEmptyParts, CaseSensitive)))
}

func TestSplitSeparators(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, strs(Of("a::b::c").Split(Of("::"), KeepEmptyParts, CaseSensitive)))
	assert.Equal(t, []string{"a", "b", "c"}, strs(Of("aXbxc").SplitChar('x', SkipEmptyParts, CaseInsensitive)))
	assert.Equal(t, []string{"aXb", "c"}, strs(Of("aXbxc").SplitChar('x', SkipEmptyParts, CaseSensitive)))
	assert.Equal(t, []string{"abc"}, strs(Of("abc").Split(Of(","), KeepEmptyParts, CaseSensitive)))

	assert.Equal(t, []string{"", "a", "b", ""}, strs(Of("ab").Split(Of(""), KeepEmptyParts, CaseSensitive)))
	assert.Equal(t, []string{"a", "b"}, strs(Of("ab").Split(Of(""), SkipEmptyParts, CaseSensitive)))

	null := View{}.Split(Of(","), KeepEmptyParts, CaseSensitive)
	require.Len(t, null, 1)
	assert.True(t, null[0].IsNull())
	assert.Empty(t, View{}.Split(Of(","), SkipEmptyParts, CaseSensitive))
}

func TestSplitAliases(t *testing.T) {
	buf := []uint16{'x', ' ', 'y'}
	parts := From(buf).SplitChar(' ', KeepEmptyParts, CaseSensitive)
	require.Len(t, parts, 2)
	assert.Same(t, &buf[0], &parts[0].Data()[0])
	assert.Same(t, &buf[2], &parts[1].Data()[0])
	assert.Equal(t, 1, cap(parts[0].Data()))
}

func TestTokenize(t *testing.T) {
	v := Of("one two three four")
	var got []string
	for p := range v.TokenizeChar(' ', SkipEmptyParts, CaseSensitive) {
		got = append(got, p.String())
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"one", "two"}, got)

	seq := v.Tokenize(Of(" "), KeepEmptyParts, CaseSensitive)
	n := 0
	for range seq {
		n++
	}
	for range seq {
		n++
	}
	assert.Equal(t, 8, n)
}

func TestSplitRegexp(t *testing.T) {
	digits := regexp.MustCompile(`\d+`)
	assert.Equal(t, []string{"a", "b", "c"}, strs(Of("a1b22c").SplitRegexp(digits, KeepEmptyParts)))
	assert.Equal(t, []string{"", "a", "b", ""}, strs(Of("1a2b3").SplitRegexp(digits, KeepEmptyParts)))
	assert.Equal(t, []string{"a", "b"}, strs(Of("1a2b3").SplitRegexp(digits, SkipEmptyParts)))

	parts := Of("😀,é,x").SplitRegexp(regexp.MustCompile(`,`), KeepEmptyParts)
	require.Len(t, parts, 3)
	assert.Equal(t, 2, parts[0].Size())
	assert.Equal(t, "é", parts[1].String())
	assert.Equal(t, 1, parts[1].Size())
	assert.Equal(t, "x", parts[2].String())

	assert.Equal(t, []string{"a", "b"}, strs(Of("a  b").SplitRegexp(regexp.MustCompile(`\s+`), KeepEmptyParts)))
}

func FuzzSplit(f *testing.F) {
	f.Add("a,b,,c", ",")
	f.Add("😀x😀", "x")
	f.Add("", "sep")
	f.Fuzz(func(t *testing.T, text, sep string) {
		v, s := Of(text), Of(sep)
		if s.IsEmpty() {
			return
		}
		parts := v.Split(s, KeepEmptyParts, CaseSensitive)
		require.NotEmpty(t, parts)
		total := 0
		for _, p := range parts {
			total += p.Size()
			require.False(t, p.Contains(s, CaseSensitive))
		}
		require.Equal(t, v.Size(), total+(len(parts)-1)*s.Size())
		require.Equal(t, len(parts)-1, v.Count(s, CaseSensitive))

		for _, p := range v.Split(s, SkipEmptyParts, CaseSensitive) {
			require.False(t, p.IsEmpty())
		}
	})
}
