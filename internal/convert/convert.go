// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives notebook-to-tutorial conversion: it checks that the
// external converter is installed, converts each job in order, prepends the
// tutorial front matter, and reports a summary.
package convert

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pdiddy/nbtutorials/internal/tutorial"
	"github.com/pdiddy/nbtutorials/pkg/types"
)

// ErrDependencyMissing is returned by Driver.Run when the external converter
// is not installed. No job is attempted in that case.
var ErrDependencyMissing = errors.New("jupyter nbconvert not found")

// installHint tells the user how to fix ErrDependencyMissing.
const installHint = "pip install jupyter nbconvert"

// Converter turns a notebook into Markdown. On success the output directory
// holds <stem>.md for the notebook at inputPath.
type Converter interface {
	Convert(inputPath, outputDir string) error
}

// DependencyChecker verifies the external converter can be run.
type DependencyChecker interface {
	CheckDependencies() error
}

// BatchResult holds the per-job outcomes of a run, in job order.
type BatchResult struct {
	Results []types.JobResult
}

// Converted returns the number of jobs that succeeded.
func (r BatchResult) Converted() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of jobs that failed.
func (r BatchResult) Failed() int {
	return r.Total() - r.Converted()
}

// Total returns the number of jobs attempted.
func (r BatchResult) Total() int {
	return len(r.Results)
}

// HasFailures reports whether any job failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed() > 0
}

// Driver runs a conversion pass over a job list. Jobs run one after another;
// a failing job is reported and skipped, never retried.
type Driver struct {
	Converter Converter
	Checker   DependencyChecker

	// RepoRoot is the directory job source paths are resolved against.
	RepoRoot string
	// OutputDir receives the tutorial pages. Relative paths are resolved
	// against RepoRoot.
	OutputDir string

	// Out receives progress and summary lines.
	Out io.Writer
}

// Run checks dependencies and converts every job. It returns an error only
// when the dependency check fails; per-job failures are in the BatchResult.
func (d *Driver) Run(jobs []types.Job) (BatchResult, error) {
	fmt.Fprint(d.Out, "🔄 Converting notebooks to Jekyll markdown...\n\n")

	if err := d.Checker.CheckDependencies(); err != nil {
		fmt.Fprintf(d.Out, "❌ Error: %v\n", ErrDependencyMissing)
		fmt.Fprintf(d.Out, "Install with: %s\n", installHint)
		return BatchResult{}, fmt.Errorf("%w: %v", ErrDependencyMissing, err)
	}

	result := d.ConvertBatch(jobs)
	d.printSummary(result)
	return result, nil
}

// ConvertBatch converts jobs in order without checking dependencies.
func (d *Driver) ConvertBatch(jobs []types.Job) BatchResult {
	result := BatchResult{Results: make([]types.JobResult, 0, len(jobs))}
	for _, job := range jobs {
		result.Results = append(result.Results, d.ConvertJob(job))
	}
	return result
}

// ConvertJob converts a single notebook and prepends its front matter. Every
// failure is reported to Out and returned in the result.
func (d *Driver) ConvertJob(job types.Job) types.JobResult {
	stem := tutorial.Stem(job)
	outDir := d.outputDir()
	res := types.JobResult{Job: job, OutputPath: tutorial.OutputPath(outDir, job)}

	fail := func(err error) types.JobResult {
		res.Status = types.JobFailed
		res.Err = err
		return res
	}

	fmt.Fprintf(d.Out, "📝 Converting %s...\n", stem)

	if err := job.Validate(); err != nil {
		fmt.Fprintf(d.Out, "❌ Error: invalid job %s: %v\n", job.SourcePath, err)
		return fail(fmt.Errorf("invalid job: %w", err))
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(d.Out, "❌ Error creating %s: %v\n", outDir, err)
		return fail(fmt.Errorf("creating output directory: %w", err))
	}

	source := filepath.Join(d.absRoot(), job.SourcePath)
	if err := d.Converter.Convert(source, outDir); err != nil {
		fmt.Fprintf(d.Out, "❌ Error converting %s: %v\n", stem, err)
		return fail(fmt.Errorf("converting %s: %w", stem, err))
	}

	if _, err := os.Stat(res.OutputPath); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(d.Out, "⚠️  Warning: %s not created\n", res.OutputPath)
		return fail(fmt.Errorf("%s not created", res.OutputPath))
	}

	if err := annotateFile(job, res.OutputPath); err != nil {
		fmt.Fprintf(d.Out, "❌ Error annotating %s: %v\n", res.OutputPath, err)
		return fail(err)
	}

	fmt.Fprintf(d.Out, "✅ Created %s\n", res.OutputPath)
	res.Status = types.JobConverted
	return res
}

// annotateFile rewrites path with the job's front matter prepended.
func annotateFile(job types.Job, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := os.WriteFile(path, tutorial.Annotate(job, content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (d *Driver) printSummary(r BatchResult) {
	fmt.Fprintf(d.Out, "\n🎉 Conversion complete! %d/%d notebooks converted\n", r.Converted(), r.Total())
	fmt.Fprintf(d.Out, "\n📂 Tutorial files created in %s/\n", d.outputDir())
	fmt.Fprintln(d.Out, "\nNext steps:")
	fmt.Fprintln(d.Out, "  1. Review the converted files")
	fmt.Fprintln(d.Out, "  2. Test locally: cd docs && bundle exec jekyll serve")
	fmt.Fprintln(d.Out, "  3. Commit and push to deploy")
}

// absRoot returns RepoRoot as an absolute path, falling back to the value
// as given if the working directory cannot be determined.
func (d *Driver) absRoot() string {
	root := d.RepoRoot
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}

func (d *Driver) outputDir() string {
	if filepath.IsAbs(d.OutputDir) {
		return d.OutputDir
	}
	return filepath.Join(d.absRoot(), d.OutputDir)
}
