// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/nbtutorials/internal/catalog"
	"github.com/pdiddy/nbtutorials/internal/convert"
	"github.com/pdiddy/nbtutorials/pkg/types"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := loadConfig()
	assert.Equal(t, ".", cfg.RepoRoot)
	assert.Equal(t, "docs/_tutorials", cfg.OutputDir)
	assert.Equal(t, "jupyter", cfg.JupyterBin)
	assert.False(t, cfg.Strict)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("NBTUTORIALS_JUPYTER_BIN", "/opt/conda/bin/jupyter")
	viper.SetEnvPrefix("NBTUTORIALS")
	viper.AutomaticEnv()

	assert.Equal(t, "/opt/conda/bin/jupyter", loadConfig().JupyterBin)
}

func TestOutputDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/repo", "docs/_tutorials"),
		outputDir(types.TutorialConfig{RepoRoot: "/repo", OutputDir: "docs/_tutorials"}))
	assert.Equal(t, "/srv/site", outputDir(types.TutorialConfig{RepoRoot: "/repo", OutputDir: "/srv/site"}))
}

func TestWriteJobsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJobs(&buf, catalog.Jobs(), "docs/_tutorials", true))

	var got []types.Job
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, catalog.Jobs(), got)
}

func TestWriteJobsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJobs(&buf, catalog.Jobs(), "docs/_tutorials", false))

	out := buf.String()
	assert.Contains(t, out, "Ordination Analysis")
	assert.Contains(t, out, filepath.Join("docs/_tutorials", "04-ml.md"))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "nbtutorials dev\n", buf.String())
}

// fakeJupyter is a stand-in for "jupyter nbconvert" that writes a one-line
// page per notebook and fails for 02-statistics.
const fakeJupyter = `#!/bin/sh
if [ "$2" = "--version" ]; then
	echo 7.16.4
	exit 0
fi
outdir="$5"
stem=$(basename "$6" .ipynb)
if [ "$stem" = "02-statistics" ]; then
	echo "NotJSONError: Notebook does not appear to be JSON" >&2
	exit 1
fi
printf '# %s\n' "$stem" > "$outdir/$stem.md"
`

// setConfig overrides a viper key for the duration of the test.
func setConfig(t *testing.T, key string, value any) {
	t.Helper()
	prev := viper.Get(key)
	viper.Set(key, value)
	t.Cleanup(func() { viper.Set(key, prev) })
}

func TestRootCommandExitContract(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake jupyter is a shell script")
	}

	binDir := t.TempDir()
	jupyter := filepath.Join(binDir, "jupyter")
	require.NoError(t, os.WriteFile(jupyter, []byte(fakeJupyter), 0o755))

	tests := []struct {
		name       string
		jupyterBin string
		strict     bool
		wantErr    string
		wantLog    string
	}{
		{
			name:       "missing converter aborts the run",
			jupyterBin: filepath.Join(binDir, "missing"),
			wantErr:    "jupyter nbconvert not found",
			wantLog:    "Install with: pip install jupyter nbconvert",
		},
		{
			name:       "job failure exits zero by default",
			jupyterBin: jupyter,
			wantLog:    "3/4 notebooks converted",
		},
		{
			name:       "job failure exits nonzero when strict",
			jupyterBin: jupyter,
			strict:     true,
			wantErr:    "1 of 4 notebook(s) failed conversion",
			wantLog:    "3/4 notebooks converted",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := t.TempDir()
			setConfig(t, "repo_root", repo)
			setConfig(t, "jupyter_bin", tt.jupyterBin)
			setConfig(t, "strict", tt.strict)

			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs([]string{})
			t.Cleanup(func() {
				rootCmd.SetOut(nil)
				rootCmd.SetErr(nil)
				rootCmd.SetArgs(nil)
			})

			err := rootCmd.Execute()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
			assert.Contains(t, out.String(), tt.wantLog)

			if tt.jupyterBin != jupyter {
				assert.True(t, errors.Is(err, convert.ErrDependencyMissing))
				assert.NoDirExists(t, filepath.Join(repo, "docs/_tutorials"))
				return
			}
			data, err := os.ReadFile(filepath.Join(repo, "docs/_tutorials", "04-ml.md"))
			require.NoError(t, err)
			assert.Equal(t, "---\nlayout: default\ntitle: \"Machine Learning\"\nparent: Tutorials\nnav_order: 4\n---\n\n# 04-ml\n", string(data))
			assert.NoFileExists(t, filepath.Join(repo, "docs/_tutorials", "02-statistics.md"))
		})
	}
}
