package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           int      `default:"8080"`
	AllowedOrigins []string `split_words:"true" default:"*"`
	LogLevel       string   `split_words:"true" default:"info"`
	FormulasPath   string   `split_words:"true"`
	Clef           string   `default:"treble"`
	TimeSignature  string   `split_words:"true" default:"4/4"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ProvideConfig reads CHORDTONE_* environment variables.
func ProvideConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("chordtone", &cfg); err != nil {
		return cfg, fmt.Errorf("could not read config: %w", err)
	}
	return cfg, nil
}
