//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Serve converts the notebooks and starts a local Jekyll preview of the docs site.
func Serve() error {
	mg.Deps(Convert)
	return sh.RunWithV(nil, "sh", "-c", "cd docs && bundle exec jekyll serve")
}
