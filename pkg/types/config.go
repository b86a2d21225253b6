package types

const (
	// DefaultOutputDir is where tutorials are written, relative to the repository root.
	DefaultOutputDir = "docs/_tutorials"

	// DefaultJupyterBin is the executable that provides the nbconvert subcommand.
	DefaultJupyterBin = "jupyter"
)

// TutorialConfig holds settings for a conversion run. The job list itself is
// not part of the configuration.
type TutorialConfig struct {
	// RepoRoot is the directory notebook paths are resolved against.
	RepoRoot string `json:"repo_root" yaml:"repo_root"`

	// OutputDir is the tutorial output directory. Relative paths are taken
	// relative to RepoRoot.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// JupyterBin is the jupyter executable name or path.
	JupyterBin string `json:"jupyter_bin" yaml:"jupyter_bin"`

	// Strict makes any failed job fail the whole run.
	Strict bool `json:"strict" yaml:"strict"`
}
