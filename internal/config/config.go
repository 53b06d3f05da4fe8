package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Channel     string `env:"CHANNEL,required"`
	SoundsDir   string `env:"SOUNDS_DIR" envDefault:"sounds"`
	StoragePath string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	LogPath     string `env:"LOG_PATH"`
	Prefix      string `env:"PREFIX" envDefault:"!"`
}

// New loads configuration from .env, falling back to the process
// environment. Prefix is only the first-run default; once stored it is
// owned by the prefix command.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
