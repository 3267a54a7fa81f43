package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFile(t *testing.T) {
	got := NewFile("/logs/2021-01-01/gen8ou-1.log.json", "2021-01-01")

	assert.Equal(t, File, got.Kind)
	assert.Equal(t, "/logs/2021-01-01/gen8ou-1.log.json", got.Path)
	assert.Equal(t, "2021-01-01", got.Label)
	assert.False(t, got.IsTerminate())
}

func TestNewTerminate(t *testing.T) {
	got := NewTerminate()

	assert.True(t, got.IsTerminate())
	assert.Empty(t, got.Path)
	assert.Empty(t, got.Label)
}
