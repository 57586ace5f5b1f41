package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds sqlbgen settings from sqlbgen.yaml.
type Config struct {
	Schema  string `mapstructure:"schema"`
	Output  string `mapstructure:"output"`
	Package string `mapstructure:"package"`
}

// LoadConfig loads configuration with precedence flags > env > config
// file > defaults. The config file is optional; a missing default file
// is not an error.
func LoadConfig(explicitPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("schema", "schema.yaml")
	v.SetDefault("output", "")
	v.SetDefault("package", "models")

	v.SetEnvPrefix("SQLBGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := explicitPath
	if path == "" {
		if _, err := os.Stat("sqlbgen.yaml"); err == nil {
			path = "sqlbgen.yaml"
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
