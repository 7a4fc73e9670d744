package docfill

// Filler applies a fixed fragment dictionary to any number of templates.
// It is safe for concurrent use.
type Filler struct {
	fragments *Dictionary
	opts      fillOptions
}

// NewFiller captures a private snapshot of fragments. Unless disabled with
// WithUnindent(false), every fragment is unindented once here rather than on
// each Fill call. Later changes to fragments do not affect the Filler.
func NewFiller(fragments *Dictionary, opts ...Option) *Filler {
	o := newFillOptions(opts)

	var captured *Dictionary
	if o.unindent {
		captured = unindentAll(fragments, o.tabWidth)
	} else {
		captured = fragments.Clone()
	}

	return &Filler{fragments: captured, opts: o}
}

// Fill substitutes the captured fragments into template. See Fill.
func (f *Filler) Fill(template string) (string, error) {
	if f == nil {
		return template, nil
	}
	return fill(template, f.fragments, f.opts)
}

// Fragments returns a copy of the captured fragments.
func (f *Filler) Fragments() *Dictionary {
	if f == nil {
		return NewDictionary()
	}
	return f.fragments.Clone()
}

// Documented is anything that carries documentation text.
type Documented interface {
	Doc() string
	SetDoc(doc string)
}

// Decorate fills the documentation of target in place. The text is only
// replaced when filling succeeds.
//
//	type command struct{ help string }
//
//	func (c *command) Doc() string       { return c.help }
//	func (c *command) SetDoc(doc string) { c.help = doc }
//
//	err := filler.Decorate(&command{help: "Usage:\n    %(flags)s"})
func (f *Filler) Decorate(target Documented) error {
	if target == nil {
		return errNilTarget
	}
	doc, err := f.Fill(target.Doc())
	if err != nil {
		return err
	}
	target.SetDoc(doc)
	return nil
}

// Transform returns a function that fills the text carried by values of
// type T. text extracts the documentation and with returns a copy of the
// value carrying the filled documentation.
func Transform[T any](f *Filler, text func(T) string, with func(T, string) T) func(T) (T, error) {
	return func(v T) (T, error) {
		doc, err := f.Fill(text(v))
		if err != nil {
			var zero T
			return zero, err
		}
		return with(v, doc), nil
	}
}
