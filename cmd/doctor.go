package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sushichan044/docfill"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [FILE...]",
	Short: "Check configuration and templates for issues",
	Long: `Check the docfill configuration and, optionally, templates for common problems.

The configuration is loaded and validated. Each given template is scanned for
placeholders that name fragments missing from the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		cfg, err := loadConfig(logger)
		if err != nil {
			return err
		}
		syntax, err := docfill.ParseSyntax(cfg.Syntax)
		if err != nil {
			return err
		}
		fragments := cfg.Dictionary()

		var errs []error
		for _, path := range args {
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				errs = append(errs, fmt.Errorf("⚠️  cannot read template: %w", readErr))
				continue
			}
			names := docfill.Placeholders(string(data), syntax)
			logger.Debug("scanned template", "path", path, "placeholders", len(names))
			for _, name := range names {
				if _, ok := fragments.Get(name); !ok {
					errs = append(errs, fmt.Errorf("⚠️  %s: placeholder %q has no fragment", path, name))
				}
			}
		}

		if len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintln(cmd.OutOrStdout(), e.Error())
			}
			return fmt.Errorf("doctor found %d issue(s)", len(errs))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅  no issues found (%d fragments, %d templates)\n", fragments.Len(), len(args))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
