package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExitCodes(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.Equal(t, 0, run([]string{"--help"}))
	assert.Equal(t, 2, run([]string{"stray"}))
	assert.Equal(t, 2, run([]string{"--unknown"}))
}
