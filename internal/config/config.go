// Package config loads and validates the application configuration from
// defaults, the JSON config file and environment variable overrides, in
// that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/consoletracker/console-catalog/internal/pkg/errors"
)

const (
	// AppName is the process-wide application identifier.
	AppName string = "console-catalog"

	// DefaultFilename is the config file looked up when no explicit path
	// is given on the command line.
	DefaultFilename = AppName + ".json"

	// envPrefix selects the environment variables considered overrides.
	// Double underscores map to nesting: CATALOG_WEB__LISTEN_PORT
	// overrides web.listen_port.
	envPrefix = "CATALOG_"

	DefaultListenPort = 8585

	DefaultPageSize    = 20
	DefaultMaxPageSize = 100
)

// Load reads the default config file.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile builds the AppConfig from the file at the given path.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. Defaults, lowest precedence.
	if err := k.Load(structs.Provider(defaultAppConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "failed to load configuration defaults")
	}

	// 2. JSON config file.
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("config file not found: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("failed to read config file: '%s'", filename))
	}

	// 3. Environment overrides, highest precedence.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "failed to load environment overrides")
	}

	// 4. Strict unmarshalling: a key in the file without a struct field
	// is a config mistake, fail loudly instead of ignoring it.
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "failed to decode configuration into the application structure")
	}

	appConfig.applyDerivedValues()

	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("config file validation failed: '%s'", filename))
	}

	return &appConfig, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Catalog: CatalogConfig{
			DefaultPageSize: DefaultPageSize,
			MaxPageSize:     DefaultMaxPageSize,
		},
		Web: WebConfig{
			ListenPort: DefaultListenPort,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
	}
}
