package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nbtutorials/internal/catalog"
	"github.com/pdiddy/nbtutorials/internal/tutorial"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the generated tutorial pages",
	Long: `Check reads each generated tutorial page and reports pages that are
missing, have no content, or whose front matter does not match the notebook
list. It also reports notebooks that share a nav_order. Nothing is modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		jobs := catalog.Jobs()

		findings := tutorial.Verify(outputDir(loadConfig()), jobs)
		for _, f := range findings {
			fmt.Fprintf(out, "⚠️  %s\n", f)
		}
		if len(findings) > 0 {
			return fmt.Errorf("%d problem(s) found", len(findings))
		}
		fmt.Fprintf(out, "✅ %d tutorial pages OK\n", len(jobs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
