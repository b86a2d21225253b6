// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nbconvert runs the jupyter nbconvert command-line tool to turn
// notebooks into Markdown. The tool is an opaque external process: success is
// a zero exit status and a <stem>.md file in the requested output directory.
package nbconvert

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) (stdout, stderr []byte, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Output runs the command and returns what it wrote to stdout and stderr.
func (o *osExecutor) Output(name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Nbconvert invokes "<bin> nbconvert". Calls block until the tool exits;
// there is no timeout.
type Nbconvert struct {
	bin  string
	exec executor
}

// New returns an Nbconvert that runs the given jupyter executable.
func New(bin string) *Nbconvert {
	return newNbconvert(bin, &osExecutor{})
}

func newNbconvert(bin string, exec executor) *Nbconvert {
	return &Nbconvert{bin: bin, exec: exec}
}

// Name returns the command line prefix used for every invocation.
func (n *Nbconvert) Name() string { return n.bin + " nbconvert" }

// Version queries the tool version. It fails if the binary is not on PATH or
// the query exits nonzero.
func (n *Nbconvert) Version() (string, error) {
	if _, err := n.exec.LookPath(n.bin); err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", n.bin, err)
	}
	out, stderr, err := n.exec.Output(n.bin, "nbconvert", "--version")
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", n.Name(), withOutput(err, stderr))
	}
	return strings.TrimSpace(string(out)), nil
}

// CheckDependencies reports whether nbconvert is installed and responding.
func (n *Nbconvert) CheckDependencies() error {
	_, err := n.Version()
	return err
}

// Convert writes <outputDir>/<stem>.md for the notebook at input.
func (n *Nbconvert) Convert(input, outputDir string) error {
	args := []string{"nbconvert", "--to", "markdown", "--output-dir", outputDir, input}
	_, stderr, err := n.exec.Output(n.bin, args...)
	if err != nil {
		return fmt.Errorf("%s %s: %w", n.Name(), input, withOutput(err, stderr))
	}
	return nil
}

// withOutput appends the last line the tool wrote to stderr, which is where
// nbconvert reports the cause of a failure.
func withOutput(err error, out []byte) error {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return err
	}
	return fmt.Errorf("%w (%s)", err, last)
}
