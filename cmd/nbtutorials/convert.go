package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nbtutorials/internal/catalog"
	"github.com/pdiddy/nbtutorials/internal/convert"
	"github.com/pdiddy/nbtutorials/internal/nbconvert"
)

func init() {
	rootCmd.Flags().Bool("strict", false, "exit nonzero when any notebook fails to convert")
	_ = viper.BindPFlag("strict", rootCmd.Flags().Lookup("strict"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	nb := nbconvert.New(cfg.JupyterBin)

	d := &convert.Driver{
		Converter: nb,
		Checker:   nb,
		RepoRoot:  cfg.RepoRoot,
		OutputDir: cfg.OutputDir,
		Out:       cmd.OutOrStdout(),
	}

	result, err := d.Run(catalog.Jobs())
	if err != nil {
		return err
	}
	if cfg.Strict && result.HasFailures() {
		return fmt.Errorf("%d of %d notebook(s) failed conversion", result.Failed(), result.Total())
	}
	return nil
}
