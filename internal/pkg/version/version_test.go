package version_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consoletracker/console-catalog/internal/pkg/version"
)

func TestGet(t *testing.T) {
	t.Parallel()

	info := version.Get()

	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.Commit)
	assert.Equal(t, "unknown", info.BuildDate)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	s := version.Get().String()

	assert.Contains(t, s, "dev")
	assert.Contains(t, s, runtime.Version())
}
