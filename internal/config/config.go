package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken  string        `env:"DISCORD_BOT_TOKEN,required,notEmpty"`
	ApiUrl        string        `env:"DSC_API_URL" envDefault:"https://dsc.wilkingames.net/"`
	PlayersUrl    string        `env:"DSC_PLAYERS_URL"`
	CommandPrefix string        `env:"COMMAND_PREFIX" envDefault:"!"`
	FetchTimeout  time.Duration `env:"FETCH_TIMEOUT" envDefault:"8s"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"debug"`
	LogPretty     bool          `env:"LOG_PRETTY" envDefault:"true"`
}

// Load reads an optional .env file into the environment and then
// parses the configuration from it.
// The returned bool tells whether a .env file was found
func Load(files ...string) (Config, bool, error) {

	dotenvFound := godotenv.Load(files...) == nil

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, dotenvFound, fmt.Errorf("could not parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, dotenvFound, err
	}
	if cfg.PlayersUrl == "" {
		cfg.PlayersUrl = cfg.ApiUrl
	}
	return cfg, dotenvFound, nil
}

func (cfg *Config) Validate() error {
	if cfg.CommandPrefix == "" {
		return fmt.Errorf("COMMAND_PREFIX must not be empty")
	}
	if cfg.ApiUrl == "" {
		return fmt.Errorf("DSC_API_URL must not be empty")
	}
	if cfg.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", cfg.FetchTimeout)
	}
	return nil
}
