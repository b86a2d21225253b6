// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nbtutorials CLI. Running it with no
// subcommand converts the user-guide notebooks into Jekyll tutorial pages.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nbtutorials/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. Without a subcommand it runs the conversion.
var rootCmd = &cobra.Command{
	Use:   "nbtutorials",
	Short: "Convert user-guide notebooks into Jekyll tutorial pages",
	Long: `nbtutorials converts the user-guide Jupyter notebooks into Markdown with
jupyter nbconvert and prepends the Jekyll front matter (layout, title, parent,
nav_order) that places each page under Tutorials.

The notebook list is fixed. Use "list" to see it and "check" to verify the
generated pages.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nbtutorials.yaml or ~/.config/nbtutorials/config.yaml)")

	viper.SetDefault("repo_root", ".")
	viper.SetDefault("output_dir", types.DefaultOutputDir)
	viper.SetDefault("jupyter_bin", types.DefaultJupyterBin)
	viper.SetDefault("strict", false)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nbtutorials")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nbtutorials"))
		}
	}

	viper.SetEnvPrefix("NBTUTORIALS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the run settings from viper.
func loadConfig() types.TutorialConfig {
	return types.TutorialConfig{
		RepoRoot:   viper.GetString("repo_root"),
		OutputDir:  viper.GetString("output_dir"),
		JupyterBin: viper.GetString("jupyter_bin"),
		Strict:     viper.GetBool("strict"),
	}
}

// outputDir resolves the configured output directory against the repo root.
func outputDir(cfg types.TutorialConfig) string {
	if filepath.IsAbs(cfg.OutputDir) {
		return cfg.OutputDir
	}
	return filepath.Join(cfg.RepoRoot, cfg.OutputDir)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
