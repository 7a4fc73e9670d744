package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sushichan044/docfill"
	"github.com/sushichan044/docfill/internal/logging"
)

// Input is one template to render.
type Input struct {
	Name string
	Load func() (string, error)
}

// FromFile reads the template from path when rendered.
func FromFile(path string) Input {
	return Input{
		Name: path,
		Load: func() (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
	}
}

// FromReader reads the template from r when rendered.
func FromReader(name string, r io.Reader) Input {
	return Input{
		Name: name,
		Load: func() (string, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
	}
}

// Output is a rendered template.
type Output struct {
	Name string
	Text string
}

// Renderer fills many templates concurrently with one Filler.
type Renderer struct {
	filler *docfill.Filler
	limit  int
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLimit caps the number of templates rendered at once. Values below 1
// select runtime.NumCPU().
func WithLimit(n int) Option {
	return func(r *Renderer) {
		r.limit = n
	}
}

// WithLogger sets the logger used for per-template debug records.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// New creates a Renderer for filler.
func New(filler *docfill.Filler, opts ...Option) *Renderer {
	r := &Renderer{filler: filler}
	for _, opt := range opts {
		opt(r)
	}
	if r.limit < 1 {
		r.limit = runtime.NumCPU()
	}
	r.logger = logging.OrDiscard(r.logger)
	return r
}

// Render loads and fills every input. Outputs keep the order of inputs.
// The first failure cancels the remaining work and is returned wrapped with
// the input name.
func (r *Renderer) Render(ctx context.Context, inputs []Input) ([]Output, error) {
	outputs := make([]Output, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			text, err := in.Load()
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			filled, err := r.filler.Fill(text)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}

			r.logger.DebugContext(ctx, "rendered template", "name", in.Name, "bytes", len(filled))
			outputs[i] = Output{Name: in.Name, Text: filled}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
