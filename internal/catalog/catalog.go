// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the fixed list of user-guide notebooks published as
// tutorials. The list is data, not discovered from the filesystem, so page
// ordering is deterministic.
package catalog

import "github.com/pdiddy/nbtutorials/pkg/types"

var jobs = [...]types.Job{
	{SourcePath: "examples/user-guide/01-ordination.ipynb", Title: "Ordination Analysis", Order: 1},
	{SourcePath: "examples/user-guide/02-statistics.ipynb", Title: "Statistical Analysis", Order: 2},
	{SourcePath: "examples/user-guide/03-clustering.ipynb", Title: "Clustering", Order: 3},
	{SourcePath: "examples/user-guide/04-ml.ipynb", Title: "Machine Learning", Order: 4},
}

// Jobs returns the configured jobs in conversion order. Each call returns a
// fresh slice; callers may not alter the catalog.
func Jobs() []types.Job {
	out := make([]types.Job, len(jobs))
	copy(out, jobs[:])
	return out
}
