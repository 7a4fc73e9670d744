package docfill

import (
	"errors"
	"fmt"
	"strings"
)

// Syntax selects how placeholders are written in templates.
type Syntax int

const (
	// PercentSyntax matches %(name)s placeholders; %% is a literal percent sign.
	PercentSyntax Syntax = iota
	// BraceSyntax matches {{name}} placeholders; spaces inside the braces are ignored.
	BraceSyntax
)

// ErrUnknownSyntax is returned by ParseSyntax for unrecognized names.
var ErrUnknownSyntax = errors.New("unknown placeholder syntax")

// String returns the config name of the syntax.
func (s Syntax) String() string {
	switch s {
	case PercentSyntax:
		return "percent"
	case BraceSyntax:
		return "brace"
	default:
		return fmt.Sprintf("Syntax(%d)", int(s))
	}
}

// ParseSyntax resolves a syntax by its config name. The empty name selects
// PercentSyntax.
func ParseSyntax(name string) (Syntax, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "percent":
		return PercentSyntax, nil
	case "brace":
		return BraceSyntax, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSyntax, name)
	}
}

// token is one piece of a scanned template: literal text or a placeholder.
type token struct {
	text        string
	placeholder bool
}

// scan splits template into literal text and placeholder tokens.
// Malformed placeholders are kept as literal text.
func (s Syntax) scan(template string) []token {
	if s == BraceSyntax {
		return scanBrace(template)
	}
	return scanPercent(template)
}

func scanPercent(template string) []token {
	var tokens []token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); {
		c := template[i]
		if c != '%' || i+1 >= len(template) {
			lit.WriteByte(c)
			i++
			continue
		}

		switch template[i+1] {
		case '%':
			lit.WriteByte('%')
			i += 2
		case '(':
			end := strings.IndexByte(template[i+2:], ')')
			// %(name)s: the closing paren must be followed by the s conversion.
			if end < 0 || i+2+end+1 >= len(template) || template[i+2+end+1] != 's' ||
				strings.ContainsAny(template[i+2:i+2+end], "(%") {
				lit.WriteByte(c)
				i++
				continue
			}
			flush()
			tokens = append(tokens, token{text: template[i+2 : i+2+end], placeholder: true})
			i += 2 + end + 2
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return tokens
}

func scanBrace(template string) []token {
	var tokens []token
	rest := template
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+2:], "}}")
		if end < 0 {
			break
		}
		name := strings.TrimSpace(rest[start+2 : start+2+end])
		if name == "" || strings.ContainsAny(name, "{}") {
			tokens = append(tokens, token{text: rest[:start+2]})
			rest = rest[start+2:]
			continue
		}
		if start > 0 {
			tokens = append(tokens, token{text: rest[:start]})
		}
		tokens = append(tokens, token{text: name, placeholder: true})
		rest = rest[start+2+end+2:]
	}
	if rest != "" {
		tokens = append(tokens, token{text: rest})
	}
	return tokens
}

// Placeholders returns the unique placeholder names of template in order of
// first appearance.
func Placeholders(template string, syntax Syntax) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, tok := range syntax.scan(template) {
		if !tok.placeholder {
			continue
		}
		if _, ok := seen[tok.text]; ok {
			continue
		}
		seen[tok.text] = struct{}{}
		names = append(names, tok.text)
	}
	return names
}

// substitute replaces every placeholder of template with values[name].
// Missing names are collected, each reported once; on any miss no text is
// returned.
func substitute(template string, syntax Syntax, values map[string]string) (string, error) {
	var b strings.Builder
	var errs []error
	reported := make(map[string]struct{})

	for _, tok := range syntax.scan(template) {
		if !tok.placeholder {
			b.WriteString(tok.text)
			continue
		}
		value, ok := values[tok.text]
		if !ok {
			if _, dup := reported[tok.text]; !dup {
				reported[tok.text] = struct{}{}
				errs = append(errs, &MissingFragmentError{Name: tok.text})
			}
			continue
		}
		b.WriteString(value)
	}

	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	return b.String(), nil
}
