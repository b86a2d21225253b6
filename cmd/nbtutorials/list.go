package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/nbtutorials/internal/catalog"
	"github.com/pdiddy/nbtutorials/internal/tutorial"
	"github.com/pdiddy/nbtutorials/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the notebooks that are converted into tutorials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asYAML, _ := cmd.Flags().GetBool("yaml")
		return writeJobs(cmd.OutOrStdout(), catalog.Jobs(), outputDir(loadConfig()), asYAML)
	},
}

func init() {
	listCmd.Flags().Bool("yaml", false, "output the job list as YAML")

	rootCmd.AddCommand(listCmd)
}

func writeJobs(w io.Writer, jobs []types.Job, outDir string, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(jobs); err != nil {
			return fmt.Errorf("encoding job list: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%-5s  %-22s  %-42s  %s\n", "Order", "Title", "Notebook", "Output")
	for _, j := range jobs {
		fmt.Fprintf(w, "%-5d  %-22s  %-42s  %s\n", j.Order, j.Title, j.SourcePath, tutorial.OutputPath(outDir, j))
	}
	return nil
}
