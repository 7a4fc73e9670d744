package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sushichan044/docfill/internal/config"
	"github.com/sushichan044/docfill/internal/errutils"
	"github.com/sushichan044/docfill/internal/logging"
)

type globalOptions struct {
	configPath string
	verbose    bool
}

var globals globalOptions

var rootCmd = &cobra.Command{
	Use:   "docfill",
	Short: "Insert shared, re-indented text fragments into documentation templates",
	Long: `docfill fills placeholders in documentation templates with fragments defined once in a config file.

Each fragment is re-indented to match the body of the template it is inserted into,
so shared parameter descriptions line up wherever they are used.

Define fragments in .docfill.yml, then run "docfill render <template>...".
Use "docfill list" to inspect available fragments.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	bindGlobalFlags(rootCmd.PersistentFlags(), &globals)
}

func bindGlobalFlags(fs *pflag.FlagSet, opts *globalOptions) {
	fs.StringVarP(&opts.configPath, "config", "c", "", "config file (default: $DOCFILL_CONFIG_DIR/config.yml, ./.docfill.yml, $XDG_CONFIG_HOME/docfill/config.yml)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
}

// Execute executes the root command and returns the exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return determineExitCode(err)
	}
	return 0
}

func determineExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func printError(w io.Writer, err error) {
	errs := errutils.Flatten(err)
	if len(errs) == 1 {
		fmt.Fprintln(w, color.RedString("Error: %v", errs[0]))
		return
	}

	fmt.Fprintln(w, color.RedString("Error:"))
	for _, e := range errs {
		fmt.Fprintln(w, color.RedString("- %v", e))
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), globals.verbose)
}

func loadConfig(logger *slog.Logger) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	path, err := config.ResolvePath(globals.configPath, cwd)
	if err != nil {
		return nil, err
	}
	logger.Debug("loading config", "path", path)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "fragments", len(cfg.Fragments), "syntax", cfg.Syntax)
	return cfg, nil
}
