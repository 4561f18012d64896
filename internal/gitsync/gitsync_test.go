package gitsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommit(t *testing.T) {
	c, ok := ParseCommit("abc123|fix: handle | in subject")
	assert.True(t, ok)
	assert.Equal(t, "abc123", c.Hash)
	assert.Equal(t, "fix: handle | in subject", c.Subject)

	_, ok = ParseCommit("no separator")
	assert.False(t, ok)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a|x", "b|y"}, splitLines("a|x\n\n  b|y  \n"))
	assert.Nil(t, splitLines("   "))
}
