package cmd

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/sushichan044/docfill/internal/spacing"
)

const previewWidth = 60

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured fragments",
	Long: `List the fragments defined in the docfill configuration.

The output shows fragment name, line count, and the first line of each fragment
as it will be inserted (after unindenting, when enabled).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(newLogger(cmd))
		if err != nil {
			return err
		}
		filler, err := cfg.NewFiller()
		if err != nil {
			return err
		}

		formatter := spacing.NewFormatter(
			spacing.Column(), // Name
			//nolint:mnd // fixed spacing value for readability
			spacing.MinSpacing(2),
			spacing.Column(), // Lines
			//nolint:mnd // fixed spacing value for readability
			spacing.MinSpacing(2),
			spacing.Column(), // Preview
		)

		fragments := filler.Fragments()
		rows := make([][]string, 0, fragments.Len()+1)
		rows = append(rows, []string{"NAME", "LINES", "PREVIEW"})
		for name, text := range fragments.All() {
			rows = append(rows, []string{name, strconv.Itoa(lineCount(text)), preview(text)})
		}
		if fmtErr := formatter.AddRows(rows...); fmtErr != nil {
			return fmtErr
		}

		return formatter.Format(cmd.OutOrStdout())
	},
}

func lineCount(text string) int {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

func preview(text string) string {
	first, _, _ := strings.Cut(strings.TrimLeft(text, "\n"), "\n")
	return runewidth.Truncate(strings.TrimSpace(first), previewWidth, "…")
}

func init() {
	rootCmd.AddCommand(listCmd)
}
