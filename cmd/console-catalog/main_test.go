package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consoletracker/console-catalog/internal/config"
	"github.com/consoletracker/console-catalog/internal/pkg/version"
)

func TestAppMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "console-catalog", config.AppName)
	assert.NotContains(t, config.AppName, " ")
	assert.Equal(t, "console-catalog.json", config.DefaultFilename)
}

func TestBuildInfoDefaults(t *testing.T) {
	t.Parallel()

	info := version.Get()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestBannerFormatting(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasPrefix(banner, "\n"))
	assert.Equal(t, 1, strings.Count(banner, "%s"), "the banner carries exactly one version placeholder")
}
