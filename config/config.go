// Package config loads environment-driven settings for the CLI and
// the HTTP server.
package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

// Config holds ALEAMIDI_-prefixed environment settings.
type Config struct {
	Port        int    `default:"8080"`
	OutDir      string `default:"./out" split_words:"true"`
	WordListURL string `split_words:"true"`
}

// Load reads the environment, falling back to defaults.
func Load() Config {
	var cfg Config
	if err := envconfig.Process("aleamidi", &cfg); err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}
