// Package docfill inserts shared, named text fragments into templates,
// re-indenting each fragment to match the body of the template it lands in.
//
// Fragments are usually stored in canonical form (see Unindent) and applied
// to many templates through a Filler:
//
//	params := docfill.NewDictionary()
//	params.Set("input", "input : array_like\n    The input array.")
//
//	filler := docfill.NewFiller(params)
//	doc, err := filler.Fill("Smooth an array.\n\n    Parameters\n    ----------\n    %(input)s\n")
package docfill

import "strings"

// Option configures Fill and NewFiller.
type Option func(*fillOptions)

type fillOptions struct {
	tabWidth int
	syntax   Syntax
	unindent bool
}

func newFillOptions(opts []Option) fillOptions {
	o := fillOptions{
		tabWidth: defaultTabWidth,
		syntax:   PercentSyntax,
		unindent: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tabWidth < 1 {
		o.tabWidth = defaultTabWidth
	}
	return o
}

// WithTabWidth sets the tab stop used to expand tabs before indentation is
// measured. Values below 1 select the default of 8.
func WithTabWidth(n int) Option {
	return func(o *fillOptions) {
		o.tabWidth = n
	}
}

// WithSyntax selects the placeholder syntax.
func WithSyntax(s Syntax) Option {
	return func(o *fillOptions) {
		o.syntax = s
	}
}

// WithUnindent controls whether NewFiller canonicalizes fragments before
// capturing them. It is ignored by Fill.
func WithUnindent(enabled bool) Option {
	return func(o *fillOptions) {
		o.unindent = enabled
	}
}

// Fill substitutes fragments into template. Continuation lines of every
// fragment are indented to the body indentation of template, i.e. the
// smallest indentation of its non-blank lines after the first one.
//
// An empty template or an empty fragments dictionary returns template
// unchanged. A placeholder naming an absent fragment fails with an error
// matching ErrMissingFragment, and no partial result is returned.
func Fill(template string, fragments *Dictionary, opts ...Option) (string, error) {
	return fill(template, fragments, newFillOptions(opts))
}

func fill(template string, fragments *Dictionary, o fillOptions) (string, error) {
	if template == "" || fragments.Len() == 0 {
		return template, nil
	}

	lines := splitLines(expandTabs(template, o.tabWidth))
	indent := strings.Repeat(" ", bodyIndent(lines))

	indented := fragments.mapWith(func(text string) string {
		return reindent(text, indent, o.tabWidth)
	})
	return substitute(template, o.syntax, indented)
}
