package docfill

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultTabWidth = 8

// MinIndent returns the smallest leading-whitespace width, in characters,
// among lines that have non-blank content. Blank lines are ignored; when no
// line has content the result is 0.
//
// Tabs are not expanded here; callers expand them beforehand.
func MinIndent(lines []string) int {
	found := false
	minWidth := 0
	for _, line := range lines {
		stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
		if stripped == "" {
			continue
		}
		width := utf8.RuneCountInString(line[:len(line)-len(stripped)])
		if !found || width < minWidth {
			minWidth = width
			found = true
		}
	}
	return minWidth
}

// Unindent strips the common indentation of all lines of fragment,
// including the first one, using the default tab width.
//
//	docfill.Unindent("    line1\n      line2") // "line1\n  line2"
func Unindent(fragment string) string {
	return unindent(fragment, defaultTabWidth)
}

// UnindentAll returns a new Dictionary with every fragment of d unindented.
// Names and their order are preserved.
func UnindentAll(d *Dictionary) *Dictionary {
	return unindentAll(d, defaultTabWidth)
}

func unindentAll(d *Dictionary, tabWidth int) *Dictionary {
	out := NewDictionary()
	for name, text := range d.All() {
		out.Set(name, unindent(text, tabWidth))
	}
	return out
}

func unindent(fragment string, tabWidth int) string {
	lines := splitLines(expandTabs(fragment, tabWidth))
	width := MinIndent(lines)
	if width == 0 {
		return fragment
	}

	for i, line := range lines {
		lines[i] = dropRunes(line, width)
	}
	return strings.Join(lines, "\n")
}

// bodyIndent is the indentation of every line of template after the first.
func bodyIndent(lines []string) int {
	if len(lines) < 2 { //nolint:mnd // the first line never sets the body indent
		return 0
	}
	return MinIndent(lines[1:])
}

// reindent prefixes every continuation line of fragment with indent.
func reindent(fragment, indent string, tabWidth int) string {
	lines := splitLines(expandTabs(fragment, tabWidth))
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lines[0])
	for _, line := range lines[1:] {
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

// expandTabs replaces each tab with spaces up to the next multiple of
// tabWidth. The column resets after every line break.
func expandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	if tabWidth < 1 {
		tabWidth = defaultTabWidth
	}

	var b strings.Builder
	b.Grow(len(s))
	column := 0
	for _, r := range s {
		switch r {
		case '\t':
			pad := tabWidth - column%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			column += pad
		case '\n', '\r':
			b.WriteRune(r)
			column = 0
		default:
			b.WriteRune(r)
			column++
		}
	}
	return b.String()
}

// splitLines splits s on \n, \r\n and \r. A trailing line break does not
// yield an extra empty line, and the empty string has no lines.
func splitLines(s string) []string {
	var lines []string
	for s != "" {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i])
		next := i + 1
		if s[i] == '\r' && next < len(s) && s[next] == '\n' {
			next++
		}
		s = s[next:]
	}
	return lines
}

func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
