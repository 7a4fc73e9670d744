package docfill_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushichan044/docfill"
)

func TestMinIndent(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{name: "nil", lines: nil, want: 0},
		{name: "empty", lines: []string{}, want: 0},
		{name: "unindented line wins", lines: []string{"  a", "b"}, want: 0},
		{name: "common indent", lines: []string{"    a", "      b"}, want: 4},
		{name: "all blank", lines: []string{"", "   ", "\t"}, want: 0},
		{name: "blank lines ignored", lines: []string{"      a", "", "  ", "    b"}, want: 4},
		{name: "single line", lines: []string{"   x"}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, docfill.MinIndent(tt.lines))
		})
	}
}

func TestUnindent(t *testing.T) {
	t.Run("strips common indent including first line", func(t *testing.T) {
		assert.Equal(t, "line1\n  line2", docfill.Unindent("    line1\n      line2"))
	})

	t.Run("zero indent is returned unchanged", func(t *testing.T) {
		in := "a\n\tb\n"
		assert.Equal(t, in, docfill.Unindent(in))
	})

	t.Run("blank lines shorter than indent become empty", func(t *testing.T) {
		assert.Equal(t, "a\n\nb", docfill.Unindent("  a\n \n  b"))
	})

	t.Run("whitespace-only lines keep their surplus", func(t *testing.T) {
		assert.Equal(t, "a\n    \nb", docfill.Unindent("  a\n      \n  b"))
	})

	t.Run("trailing newline is dropped", func(t *testing.T) {
		assert.Equal(t, "a\n  b", docfill.Unindent("  a\n    b\n"))
	})

	t.Run("tabs are expanded before measuring", func(t *testing.T) {
		assert.Equal(t, "a\n    b", docfill.Unindent("\ta\n\t    b"))
	})

	t.Run("crlf line endings", func(t *testing.T) {
		assert.Equal(t, "a\nb", docfill.Unindent("  a\r\n  b"))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, docfill.Unindent(""))
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, in := range []string{
			"    line1\n      line2",
			"  a\n\n  b\n",
			"\t\tx\n\t  y",
			"no indent",
		} {
			once := docfill.Unindent(in)
			require.Equal(t, once, docfill.Unindent(once), "input %q", in)
		}
	})
}

func TestUnindentAll(t *testing.T) {
	raw := docfill.NewDictionary()
	raw.Set("zeta", "    z1\n      z2")
	raw.Set("alpha", "a")
	raw.Set("mid", "  m1\n  m2")

	got := docfill.UnindentAll(raw)

	want := [][2]string{
		{"zeta", "z1\n  z2"},
		{"alpha", "a"},
		{"mid", "m1\nm2"},
	}
	if diff := cmp.Diff(want, pairs(got)); diff != "" {
		t.Errorf("UnindentAll mismatch (-want +got):\n%s", diff)
	}

	original, ok := raw.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, "    z1\n      z2", original, "input dictionary must not change")
}

func pairs(d *docfill.Dictionary) [][2]string {
	var out [][2]string
	for name, text := range d.All() {
		out = append(out, [2]string{name, text})
	}
	return out
}
