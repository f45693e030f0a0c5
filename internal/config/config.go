package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded by a .env file.
type Config struct {
	Port    int    `env:"PORT" envDefault:"3000"`
	DataDir string `env:"DATA_DIR" envDefault:"data"`

	TransferFile     string `env:"TRANSFER_FILE" envDefault:"tabela_transferencia.csv"`
	TransferEncoding string `env:"TRANSFER_ENCODING" envDefault:"utf-8"`
	PhaseoutFile     string `env:"PHASEOUT_FILE" envDefault:"tabela_phaseout.csv"`
	PhaseoutEncoding string `env:"PHASEOUT_ENCODING" envDefault:"utf-8"`

	APIBaseURL    string        `env:"API_BASE_URL" envDefault:"http://localhost:3000/api"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	SuggestionURL string        `env:"SUGGESTION_URL"`
	Locale        string        `env:"LOCALE" envDefault:"pt-BR"`
	ThemeFile     string        `env:"THEME_FILE"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	DBURI  string `env:"DB_URI" envDefault:"mongodb://localhost:27017"`
	DBName string `env:"DB_NAME" envDefault:"hermes"`
}

// Load reads the optional dotenv files and parses the environment. A missing
// dotenv file is reported through dotenvErr and is not fatal.
func Load(dotenvFiles ...string) (cfg Config, dotenvErr error, err error) {
	dotenvErr = godotenv.Load(dotenvFiles...)

	if err := env.Parse(&cfg); err != nil {
		return Config{}, dotenvErr, fmt.Errorf("parse env: %w", err)
	}
	return cfg, dotenvErr, nil
}

// TransferPath resolves the transfer source file against DataDir.
func (c Config) TransferPath() string {
	return c.resolve(c.TransferFile)
}

// PhaseoutPath resolves the phase-out source file against DataDir.
func (c Config) PhaseoutPath() string {
	return c.resolve(c.PhaseoutFile)
}

// ThemePath returns ThemeFile, or theme.yaml under the user config dir.
func (c Config) ThemePath() (string, error) {
	if c.ThemeFile != "" {
		return c.ThemeFile, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "hermes", "theme.yaml"), nil
}

func (c Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
