// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// JobStatus indicates the outcome of converting one notebook.
type JobStatus string

const (
	JobConverted JobStatus = "converted"
	JobFailed    JobStatus = "failed"
)

// plainTitle rejects characters that would break the quoted title in the
// front matter header.
var plainTitle = regexp.MustCompile(`^[^"\r\n]+$`)

// Job is one notebook-to-tutorial conversion unit. Jobs are fixed at build
// time; Order becomes the page's nav_order and is expected to be unique and
// ascending across the job list, though nothing enforces it.
type Job struct {
	// SourcePath is the notebook path relative to the repository root
	// (e.g. "examples/user-guide/01-ordination.ipynb").
	SourcePath string `json:"source" yaml:"source"`

	// Title is the tutorial page title.
	Title string `json:"title" yaml:"title"`

	// Order is the navigation position of the page.
	Order int `json:"nav_order" yaml:"nav_order"`
}

// Validate checks that the job can be converted and annotated.
func (j Job) Validate() error {
	return validation.ValidateStruct(&j,
		validation.Field(&j.SourcePath, validation.Required, validation.By(func(value any) error {
			if !strings.HasSuffix(value.(string), ".ipynb") {
				return validation.NewError("job_source_ext", "must be an .ipynb notebook")
			}
			return nil
		})),
		validation.Field(&j.Title, validation.Required, validation.Match(plainTitle).Error("must not contain quotes or line breaks")),
		validation.Field(&j.Order, validation.Required, validation.Min(1)),
	)
}

// JobResult is the outcome of one job. A failed job carries the reason in Err;
// errors never cross job boundaries.
type JobResult struct {
	Job        Job
	Status     JobStatus
	OutputPath string
	Err        error
}

// OK reports whether the job converted successfully.
func (r JobResult) OK() bool {
	return r.Status == JobConverted
}
