package docfill_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushichan044/docfill"
)

func dict(kv ...string) *docfill.Dictionary {
	d := docfill.NewDictionary()
	for i := 0; i+1 < len(kv); i += 2 {
		d.Set(kv[i], kv[i+1])
	}
	return d
}

func TestFillNoop(t *testing.T) {
	t.Run("empty template", func(t *testing.T) {
		got, err := docfill.Fill("", dict("a", "x"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty dictionary keeps placeholders", func(t *testing.T) {
		got, err := docfill.Fill("t %(a)s", docfill.NewDictionary())
		require.NoError(t, err)
		assert.Equal(t, "t %(a)s", got)
	})

	t.Run("nil dictionary", func(t *testing.T) {
		got, err := docfill.Fill("100%% %(a)s", nil)
		require.NoError(t, err)
		assert.Equal(t, "100%% %(a)s", got)
	})
}

func TestFillReindentsContinuationLines(t *testing.T) {
	got, err := docfill.Fill("Header\n    %(p)s", dict("p", "first\nsecond"))
	require.NoError(t, err)
	assert.Equal(t, "Header\n    first\n    second", got)
}

func TestFillDocstring(t *testing.T) {
	template := `Apply a uniform filter.

    Parameters
    ----------
    %(input)s
    %(output)s

    Returns
    -------
    out : ndarray
`
	fragments := dict(
		"input", "input : array_like\n    The input array.",
		"output", "output : ndarray, optional\n    The array in which to place the output.",
	)

	got, err := docfill.Fill(template, fragments)
	require.NoError(t, err)

	want := `Apply a uniform filter.

    Parameters
    ----------
    input : array_like
        The input array.
    output : ndarray, optional
        The array in which to place the output.

    Returns
    -------
    out : ndarray
`
	assert.Equal(t, want, got)
}

func TestFillSingleLineTemplateDoesNotIndent(t *testing.T) {
	got, err := docfill.Fill("    see %(p)s", dict("p", "a\nb"))
	require.NoError(t, err)
	assert.Equal(t, "    see a\nb", got)
}

func TestFillExpandsTabsInTemplate(t *testing.T) {
	got, err := docfill.Fill("Head\n\t%(p)s", dict("p", "a\nb"))
	require.NoError(t, err)
	assert.Equal(t, "Head\n\ta\n        b", got)

	got, err = docfill.Fill("Head\n\t%(p)s", dict("p", "a\nb"), docfill.WithTabWidth(4))
	require.NoError(t, err)
	assert.Equal(t, "Head\n\ta\n    b", got)
}

func TestFillPercentEscapes(t *testing.T) {
	got, err := docfill.Fill("100%% of %(p)s, 5% off", dict("p", "x"))
	require.NoError(t, err)
	assert.Equal(t, "100% of x, 5% off", got)
}

func TestFillIgnoresUnusedFragments(t *testing.T) {
	got, err := docfill.Fill("only %(a)s", dict("a", "x", "b", "y"))
	require.NoError(t, err)
	assert.Equal(t, "only x", got)
}

func TestFillRepeatedPlaceholder(t *testing.T) {
	got, err := docfill.Fill("Doc\n  %(a)s\n  %(a)s", dict("a", "x\ny"))
	require.NoError(t, err)
	assert.Equal(t, "Doc\n  x\n  y\n  x\n  y", got)
}

func TestFillMissingFragment(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		got, err := docfill.Fill("see %(missing)s", dict("other", "x"))
		require.Error(t, err)
		assert.Empty(t, got)
		require.ErrorIs(t, err, docfill.ErrMissingFragment)

		missing, ok := docfill.AsMissingFragmentError(err)
		require.True(t, ok)
		assert.Equal(t, "missing", missing.Name)
	})

	t.Run("all names are reported once", func(t *testing.T) {
		_, err := docfill.Fill("%(b)s %(other)s %(a)s %(b)s", dict("other", "x"))
		require.ErrorIs(t, err, docfill.ErrMissingFragment)
		assert.Equal(t, []string{"b", "a"}, docfill.MissingFragmentNames(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		_, ok := docfill.AsMissingFragmentError(errors.New("boom"))
		assert.False(t, ok)
		assert.Nil(t, docfill.MissingFragmentNames(nil))
	})
}

func TestFillBraceSyntax(t *testing.T) {
	got, err := docfill.Fill("A\n  {{p}} and {{ q }}", dict("p", "x\ny", "q", "z"),
		docfill.WithSyntax(docfill.BraceSyntax))
	require.NoError(t, err)
	assert.Equal(t, "A\n  x\n  y and z", got)

	_, err = docfill.Fill("A {{nope}}", dict("p", "x"), docfill.WithSyntax(docfill.BraceSyntax))
	require.ErrorIs(t, err, docfill.ErrMissingFragment)
}

func TestFillDoesNotMutateFragments(t *testing.T) {
	fragments := dict("p", "first\nsecond")
	_, err := docfill.Fill("H\n    %(p)s", fragments)
	require.NoError(t, err)

	text, ok := fragments.Get("p")
	require.True(t, ok)
	assert.Equal(t, "first\nsecond", text)
}

func TestFillEmptyFragment(t *testing.T) {
	got, err := docfill.Fill("H\n  [%(p)s]", dict("p", ""))
	require.NoError(t, err)
	assert.Equal(t, "H\n  []", got)
}
