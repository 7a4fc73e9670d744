package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sushichan044/docfill/internal/render"
)

const stdinName = "-"

var errDuplicateOutput = errors.New("output file name is used by more than one template")

type renderOptions struct {
	outDir string
	jobs   int
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render [FILE...]",
	Short: "Fill templates with configured fragments",
	Long: `Fill each template with the configured fragments and print the result.

Templates are read from the given files, or from stdin when no file (or "-") is given.
With --out-dir, each result is written to <out-dir>/<file name> instead of stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		cfg, err := loadConfig(logger)
		if err != nil {
			return err
		}
		filler, err := cfg.NewFiller()
		if err != nil {
			return err
		}

		inputs := renderInputs(args, cmd.InOrStdin())
		renderer := render.New(filler, render.WithLimit(renderOpts.jobs), render.WithLogger(logger))
		outputs, err := renderer.Render(cmd.Context(), inputs)
		if err != nil {
			return err
		}

		if renderOpts.outDir == "" {
			for _, out := range outputs {
				if _, writeErr := io.WriteString(cmd.OutOrStdout(), out.Text); writeErr != nil {
					return writeErr
				}
			}
			return nil
		}
		return writeOutputs(renderOpts.outDir, outputs, cmd.OutOrStdout())
	},
}

func renderInputs(args []string, stdin io.Reader) []render.Input {
	if len(args) == 0 {
		return []render.Input{render.FromReader(stdinName, stdin)}
	}

	inputs := make([]render.Input, 0, len(args))
	for _, arg := range args {
		if arg == stdinName {
			inputs = append(inputs, render.FromReader(stdinName, stdin))
			continue
		}
		inputs = append(inputs, render.FromFile(arg))
	}
	return inputs
}

// writeOutputs writes file outputs into dir; stdin output goes to stdout.
func writeOutputs(dir string, outputs []render.Output, stdout io.Writer) error {
	seen := make(map[string]string, len(outputs))
	for _, out := range outputs {
		if out.Name == stdinName {
			continue
		}
		base := filepath.Base(out.Name)
		if prev, dup := seen[base]; dup {
			return fmt.Errorf("%w: %s and %s", errDuplicateOutput, prev, out.Name)
		}
		seen[base] = out.Name
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, out := range outputs {
		if out.Name == stdinName {
			if _, err := io.WriteString(stdout, out.Text); err != nil {
				return err
			}
			continue
		}
		dest := filepath.Join(dir, filepath.Base(out.Name))
		if err := os.WriteFile(dest, []byte(out.Text), 0o644); err != nil { //nolint:gosec // rendered docs are not secret
			return err
		}
	}
	return nil
}

func init() {
	renderCmd.Flags().StringVarP(&renderOpts.outDir, "out-dir", "o", "", "write each result to this directory")
	renderCmd.Flags().IntVarP(&renderOpts.jobs, "jobs", "j", 0, "templates rendered at once (default: number of CPUs)")
	rootCmd.AddCommand(renderCmd)
}
