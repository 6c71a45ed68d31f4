package log

import (
	"fmt"
	"os"
)

// Options configures the process-wide logging system.
type Options struct {
	Name  string // application identifier, used for the log file name
	Dir   string // log directory, "logs" when empty
	Level Level  // minimum level, Info when zero

	MaxAgeDays int // rotated files older than this are deleted (0: keep)
	MaxSizeMB  int // max size per log file before rotation (0: default 100MB)
	MaxBackups int // max rotated files to retain (0: default 20)

	EnableConsoleLog bool // mirror log output to stdout (development)
	ReportCaller     bool // record the calling file:line with each entry

	// CallerPathPrefix trims this prefix from reported caller functions so
	// entries show "internal/catalog" instead of the full module path.
	CallerPathPrefix string
}

// Validate rejects option combinations that would fail at runtime.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("log options: application name is required")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("log options: directory path %q already exists as a file", opts.Dir)
		}
	}

	if opts.MaxAgeDays < 0 {
		return fmt.Errorf("log options: MaxAgeDays must be >= 0, got %d", opts.MaxAgeDays)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("log options: MaxSizeMB must be >= 0, got %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("log options: MaxBackups must be >= 0, got %d", opts.MaxBackups)
	}

	return nil
}

// NewProductionOptions returns the file-centric logging profile.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:             appName,
		MaxAgeDays:       30,
		EnableConsoleLog: false,
		ReportCaller:     true,
		CallerPathPrefix: "github.com/consoletracker",
	}
}

// NewDevelopmentOptions returns a console-friendly logging profile.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:             appName,
		Level:            DebugLevel,
		MaxAgeDays:       1,
		EnableConsoleLog: true,
		ReportCaller:     true,
		CallerPathPrefix: "github.com/consoletracker",
	}
}
