// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tutorial

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/nbtutorials/pkg/types"
)

// Finding describes one problem with a generated tutorial page.
type Finding struct {
	Job     types.Job
	Path    string
	Problem string
}

func (f Finding) String() string {
	if f.Path == "" {
		return f.Problem
	}
	return fmt.Sprintf("%s: %s", f.Path, f.Problem)
}

// Verify inspects the pages that jobs would produce in outputDir and reports
// what is missing or does not match. It never modifies files.
func Verify(outputDir string, jobs []types.Job) []Finding {
	var findings []Finding

	byOrder := map[int][]types.Job{}
	for _, job := range jobs {
		byOrder[job.Order] = append(byOrder[job.Order], job)
	}
	for _, job := range jobs {
		dup := byOrder[job.Order]
		if len(dup) > 1 && dup[0] == job {
			findings = append(findings, Finding{
				Job:     job,
				Problem: fmt.Sprintf("nav_order %d is shared by %d notebooks", job.Order, len(dup)),
			})
		}
	}

	for _, job := range jobs {
		findings = append(findings, verifyPage(outputDir, job)...)
	}
	return findings
}

func verifyPage(outputDir string, job types.Job) []Finding {
	path := OutputPath(outputDir, job)
	finding := func(format string, args ...any) Finding {
		return Finding{Job: job, Path: path, Problem: fmt.Sprintf(format, args...)}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Finding{finding("not generated")}
	}
	if err != nil {
		return []Finding{finding("unreadable: %v", err)}
	}

	meta, body, err := Parse(data)
	if err != nil {
		return []Finding{finding("%v", err)}
	}
	if meta == (Meta{}) {
		return []Finding{finding("missing front matter")}
	}

	var findings []Finding
	want := MetaFor(job)
	if meta.Layout != want.Layout {
		findings = append(findings, finding("layout is %q, want %q", meta.Layout, want.Layout))
	}
	if meta.Title != want.Title {
		findings = append(findings, finding("title is %q, want %q", meta.Title, want.Title))
	}
	if meta.Parent != want.Parent {
		findings = append(findings, finding("parent is %q, want %q", meta.Parent, want.Parent))
	}
	if meta.NavOrder != want.NavOrder {
		findings = append(findings, finding("nav_order is %d, want %d", meta.NavOrder, want.NavOrder))
	}
	if isEmptyMarkdown(body) {
		findings = append(findings, finding("page has no content"))
	}
	return findings
}

// isEmptyMarkdown reports whether body parses to a document with no blocks.
func isEmptyMarkdown(body []byte) bool {
	doc := goldmark.New().Parser().Parse(text.NewReader(body))
	return !doc.HasChildren()
}
