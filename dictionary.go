package docfill

import (
	"iter"
	"maps"
	"slices"
)

// Dictionary is an ordered mapping from fragment name to fragment text.
// Names are unique; replacing a fragment keeps its original position.
// A nil *Dictionary behaves as an empty one for every read method.
type Dictionary struct {
	names []string
	texts map[string]string
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{texts: make(map[string]string)}
}

// DictionaryFromMap builds a Dictionary from m with names in sorted order.
func DictionaryFromMap(m map[string]string) *Dictionary {
	d := NewDictionary()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		d.Set(name, m[name])
	}
	return d
}

// Set stores text under name.
func (d *Dictionary) Set(name, text string) {
	if d.texts == nil {
		d.texts = make(map[string]string)
	}
	if _, exists := d.texts[name]; !exists {
		d.names = append(d.names, name)
	}
	d.texts[name] = text
}

// Get returns the fragment stored under name.
func (d *Dictionary) Get(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	text, ok := d.texts[name]
	return text, ok
}

// Len returns the number of fragments.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Names returns fragment names in insertion order.
func (d *Dictionary) Names() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.names)
}

// All iterates over fragments in insertion order.
func (d *Dictionary) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if d == nil {
			return
		}
		for _, name := range d.names {
			if !yield(name, d.texts[name]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of d.
func (d *Dictionary) Clone() *Dictionary {
	out := NewDictionary()
	if d == nil {
		return out
	}
	out.names = slices.Clone(d.names)
	maps.Copy(out.texts, d.texts)
	return out
}

// mapWith returns a plain map whose values are transformed by fn.
func (d *Dictionary) mapWith(fn func(string) string) map[string]string {
	result := make(map[string]string, d.Len())
	for name, text := range d.All() {
		result[name] = fn(text)
	}
	return result
}
