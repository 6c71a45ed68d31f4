package config

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/consoletracker/console-catalog/internal/pkg/cronx"
	apperrors "github.com/consoletracker/console-catalog/internal/pkg/errors"
)

// AppConfig is the root of all application settings.
type AppConfig struct {
	Debug   bool          `json:"debug"`
	Catalog CatalogConfig `json:"catalog"`
	Web     WebConfig     `json:"web"`
	CORS    CORSConfig    `json:"cors"`
}

// applyDerivedValues fills values computable from others, before
// validation so derived values are validated too.
func (c *AppConfig) applyDerivedValues() {
	for i := range c.Catalog.Sources {
		c.Catalog.Sources[i].applyDerivedValues()
	}
}

func (c *AppConfig) validate() error {
	if err := c.Catalog.validate(); err != nil {
		return err
	}
	if err := c.Web.validate(); err != nil {
		return err
	}
	return c.CORS.validate()
}

// VerifyRecommendations reports non-fatal configuration smells, such as
// listening on a privileged port.
func (c *AppConfig) VerifyRecommendations() []string {
	return c.Web.VerifyRecommendations()
}

// CatalogConfig describes the snapshot sources and the query paging
// limits.
type CatalogConfig struct {
	Sources         []SourceConfig `json:"sources" validate:"min=1,unique=ID"`
	Reload          ReloadConfig   `json:"reload"`
	DefaultPageSize int            `json:"default_page_size" validate:"min=1"`
	MaxPageSize     int            `json:"max_page_size" validate:"min=1"`
}

func (c *CatalogConfig) validate() error {
	if err := checkStruct(validate, c, "Catalog"); err != nil {
		return err
	}

	for _, src := range c.Sources {
		if err := checkStruct(validate, src, fmt.Sprintf("Source['%s']", src.ID)); err != nil {
			return err
		}
	}

	if c.MaxPageSize < c.DefaultPageSize {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("maximum page size (max_page_size: %d) must not be smaller than the default page size (default_page_size: %d)", c.MaxPageSize, c.DefaultPageSize))
	}

	if c.Reload.Runnable {
		if err := cronx.Validate(c.Reload.TimeSpec); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, "catalog reload schedule (reload.time_spec) is not a valid cron expression")
		}
	}

	return nil
}

// SourcePaths returns the snapshot file paths in configuration order.
// Order matters: it fixes the default sort of the merged collection.
func (c *CatalogConfig) SourcePaths() []string {
	paths := make([]string, 0, len(c.Sources))
	for _, src := range c.Sources {
		paths = append(paths, src.File)
	}
	return paths
}

// SourceConfig is one snapshot file written by the acquisition pipeline.
type SourceConfig struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
	File string `json:"file" validate:"required"`
}

// applyDerivedValues derives the source ID from the site name when the
// config omits it: "Magazine Luiza" becomes "magazine_luiza".
func (c *SourceConfig) applyDerivedValues() {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = strcase.ToSnake(strings.TrimSpace(c.Name))
	}
}

// ReloadConfig schedules the periodic rebuild of the catalog from the
// snapshot files. The rebuild always replaces the whole collection.
type ReloadConfig struct {
	Runnable bool   `json:"runnable"`
	TimeSpec string `json:"time_spec"`
}

// WebConfig holds the HTTP listener and TLS settings.
type WebConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WebConfig) validate() error {
	return checkStruct(validate, c, "Web")
}

func (c *WebConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("the configured port is a system reserved port (port: %d); starting the server may require elevated privileges", c.ListenPort))
	}

	return warnings
}

// CORSConfig defines the browser cross-origin policy of the API.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "the CORS allowed origin list (allow_origins) is empty")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "the wildcard (*) cannot be combined with other origins; configure only the wildcard to allow everything")
		}
	}

	return checkStruct(validate, c, "CORS")
}
