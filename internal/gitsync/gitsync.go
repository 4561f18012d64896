// Package gitsync reads commit history through the git CLI.
package gitsync

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultInitialCommits is how many commits the first sync looks at
const DefaultInitialCommits = 10

// Commit is one line of `git log --pretty=format:%H|%s`
type Commit struct {
	Hash    string
	Subject string
}

// Runner is the subset of git the sync transition needs
type Runner interface {
	// Log returns commits newest first. With since set it returns since..HEAD,
	// otherwise the last DefaultInitialCommits commits.
	Log(ctx context.Context, since string) ([]string, error)
	// TagsAtHead returns the tags pointing at HEAD
	TagsAtHead(ctx context.Context) ([]string, error)
}

// CLI runs git in Dir
type CLI struct {
	Dir string
}

// NewCLI returns a Runner executing git inside dir
func NewCLI(dir string) *CLI {
	return &CLI{Dir: dir}
}

// Log implements Runner
func (c *CLI) Log(ctx context.Context, since string) ([]string, error) {
	args := []string{"log", "--pretty=format:%H|%s"}
	if since != "" {
		args = append(args, since+"..HEAD")
	} else {
		args = append(args, fmt.Sprintf("-%d", DefaultInitialCommits))
	}
	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// TagsAtHead implements Runner
func (c *CLI) TagsAtHead(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "tag", "--points-at", "HEAD")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// ParseCommit splits a hash|subject line. ok is false when the separator is missing.
func ParseCommit(line string) (Commit, bool) {
	hash, subject, ok := strings.Cut(line, "|")
	if !ok {
		return Commit{}, false
	}
	return Commit{Hash: hash, Subject: subject}, true
}

func splitLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
