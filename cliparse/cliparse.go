package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	AdminKeySalt      string
	DefaultPopulation string
	Chamber           string
	ChartWidth        int
	ChartHeight       int
	AllowedOrigins    []string
	PrintAdminKey     string
}

// LoadEnvFile loads KEY=VALUE pairs from path into the environment.
// A missing file is not an error, and existing variables are never overwritten.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("popvote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	// Presentation
	fs.StringVar(&cfg.DefaultPopulation, "population", "", "Population record used when a request names none")
	fs.StringVar(&cfg.Chamber, "chamber", "", "Chamber name used when a vote names none")
	fs.IntVar(&cfg.ChartWidth, "chart-width", 0, "Chart width in pixels")
	fs.IntVar(&cfg.ChartHeight, "chart-height", 0, "Chart height in pixels")

	var origins string
	fs.StringVar(&origins, "origins", "", "Comma-separated origins allowed credentialed CORS access")

	fs.StringVar(&cfg.PrintAdminKey, "print-admin-key", "", "Print the admin key for a scope (votes or populations) and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", 3318)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("database type must be sqlite or postgres, got %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:popvote.db"
	}

	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}

	if cfg.DefaultPopulation == "" {
		cfg.DefaultPopulation = os.Getenv("DEFAULT_POPULATION")
		if cfg.DefaultPopulation == "" {
			cfg.DefaultPopulation = "default"
		}
	}

	if cfg.Chamber == "" {
		cfg.Chamber = os.Getenv("CHAMBER")
		if cfg.Chamber == "" {
			cfg.Chamber = "Senate"
		}
	}

	if cfg.ChartWidth == 0 {
		w, err := envInt("CHART_WIDTH", 400)
		if err != nil {
			return Config{}, err
		}
		cfg.ChartWidth = w
	}
	if cfg.ChartHeight == 0 {
		h, err := envInt("CHART_HEIGHT", 400)
		if err != nil {
			return Config{}, err
		}
		cfg.ChartHeight = h
	}
	if cfg.ChartWidth < 0 || cfg.ChartHeight < 0 {
		return Config{}, errors.New("chart size must be positive")
	}

	if origins == "" {
		origins = os.Getenv("ALLOWED_ORIGINS")
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}

func envInt(name string, def int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", name)
	}
	return n, nil
}
