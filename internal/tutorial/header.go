// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tutorial builds and reads the Jekyll front matter that turns a
// converted notebook into a tutorial page.
package tutorial

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/pdiddy/nbtutorials/pkg/types"
)

const (
	// Layout is the Jekyll layout every tutorial page uses.
	Layout = "default"
	// Parent is the navigation section tutorials are listed under.
	Parent = "Tutorials"
)

// Meta is the front matter of a tutorial page.
type Meta struct {
	Layout   string `yaml:"layout"`
	Title    string `yaml:"title"`
	Parent   string `yaml:"parent"`
	NavOrder int    `yaml:"nav_order"`
}

// MetaFor returns the front matter the given job should produce.
func MetaFor(job types.Job) Meta {
	return Meta{Layout: Layout, Title: job.Title, Parent: Parent, NavOrder: job.Order}
}

// Header returns the front matter block for job, including the trailing
// blank line. The title is written verbatim between double quotes.
func Header(job types.Job) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "layout: %s\n", Layout)
	fmt.Fprintf(&b, "title: \"%s\"\n", job.Title)
	fmt.Fprintf(&b, "parent: %s\n", Parent)
	fmt.Fprintf(&b, "nav_order: %d\n", job.Order)
	b.WriteString("---\n\n")
	return b.String()
}

// Annotate prepends the job's header to content. Content is not otherwise
// modified.
func Annotate(job types.Job, content []byte) []byte {
	h := Header(job)
	out := make([]byte, 0, len(h)+len(content))
	out = append(out, h...)
	return append(out, content...)
}

// Parse splits a tutorial page into its front matter and Markdown body. A
// page without front matter yields a zero Meta and the whole input as body.
func Parse(data []byte) (Meta, []byte, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("parse front matter: %w", err)
	}
	return meta, body, nil
}

// OutputPath returns where the converted page for job lands: the notebook's
// base name with a .md extension, inside outputDir.
func OutputPath(outputDir string, job types.Job) string {
	return filepath.Join(outputDir, Stem(job)+".md")
}

// Stem returns the notebook file name without directory or extension.
func Stem(job types.Job) string {
	base := filepath.Base(job.SourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
