package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// configName is the optional per-root config file (.stdbuild.yaml).
const configName = ".stdbuild"

// fileConfig are the settings a root may pin in its config file.
// Flags always win over file values.
type fileConfig struct {
	// BuildDir is the build-output directory name, relative to the root.
	BuildDir string `mapstructure:"buildDir"`

	// LegacyExtensions overrides the deprecated-extension set the
	// legacy scanner reports.
	LegacyExtensions []string `mapstructure:"legacyExtensions"`
}

// loadFile reads the optional config file at the stdlib root. A missing
// file is not an error; a malformed one is.
func loadFile(root string) (fileConfig, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("reading %s.yaml: %w", configName, err)
	}

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fileConfig{}, fmt.Errorf("unmarshaling %s.yaml: %w", configName, err)
	}

	return cfg, nil
}
