// Package cronx centralizes the application's cron expression spec so
// every scheduler and validator parses expressions identically.
package cronx

import (
	"github.com/robfig/cron/v3"

	apperrors "github.com/consoletracker/console-catalog/internal/pkg/errors"
)

// StandardParser returns the application's cron parser: the extended
// 6-field format with a leading seconds field, plus descriptors.
//
//	"0 0 6 * * *"  every day at 06:00:00
//	"@hourly"      every hour on the hour
//	"@every 30m"   every thirty minutes
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate reports whether spec is a valid expression for StandardParser.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(spec); err != nil {
		return apperrors.Wrapf(err, apperrors.InvalidInput, "invalid cron expression: %q", spec)
	}
	return nil
}

// New returns a cron scheduler configured with StandardParser.
func New() *cron.Cron {
	return cron.New(cron.WithParser(StandardParser()))
}
