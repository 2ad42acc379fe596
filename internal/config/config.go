package config

import (
	"github.com/caarlos0/env/v11"
)

// Config carries the runtime knobs that spec-wise are constants but
// should not live as literals inside the fetch and format code: the
// API base URL (overridable so tests can point at a local server), the
// identifying User-Agent, and the display bound.
type Config struct {
	APIBaseURL string `env:"GITHUB_API_URL" envDefault:"https://api.github.com/"`
	UserAgent  string `env:"GITHUB_ACTIVITY_USER_AGENT" envDefault:"github-activity/1.0"`
	MaxEvents  int    `env:"GITHUB_ACTIVITY_MAX_EVENTS" envDefault:"10"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
