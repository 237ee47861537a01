package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string   `mapstructure:"PORT"`
	Env         string   `mapstructure:"ENV"`
	DatabaseURL string   `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	MigrationsDir string `mapstructure:"MIGRATIONS_DIR"`

	// Cross-source linkage thresholds.
	LinkMaxDays    int     `mapstructure:"LINK_MAX_DAYS"`
	LinkMinScore   float64 `mapstructure:"LINK_MIN_SCORE"`
	LinkDateWeight float64 `mapstructure:"LINK_DATE_WEIGHT"`
	LinkNameWeight float64 `mapstructure:"LINK_NAME_WEIGHT"`

	// Surgical timeline imaging window, asymmetric around the procedure.
	PreOpImagingDays  int `mapstructure:"PRE_OP_IMAGING_DAYS"`
	PostOpImagingDays int `mapstructure:"POST_OP_IMAGING_DAYS"`

	// Encounter grouping. Zero means exact-date matching only.
	EncounterToleranceDays int `mapstructure:"ENCOUNTER_TOLERANCE_DAYS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("LINK_MAX_DAYS", 14)
	v.SetDefault("LINK_MIN_SCORE", 0.2)
	v.SetDefault("LINK_DATE_WEIGHT", 0.6)
	v.SetDefault("LINK_NAME_WEIGHT", 0.4)
	v.SetDefault("PRE_OP_IMAGING_DAYS", 90)
	v.SetDefault("POST_OP_IMAGING_DAYS", 30)
	v.SetDefault("ENCOUNTER_TOLERANCE_DAYS", 0)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("MIGRATIONS_DIR")
	v.BindEnv("LINK_MAX_DAYS")
	v.BindEnv("LINK_MIN_SCORE")
	v.BindEnv("LINK_DATE_WEIGHT")
	v.BindEnv("LINK_NAME_WEIGHT")
	v.BindEnv("PRE_OP_IMAGING_DAYS")
	v.BindEnv("POST_OP_IMAGING_DAYS")
	v.BindEnv("ENCOUNTER_TOLERANCE_DAYS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate rejects threshold combinations that would make linkage scores
// meaningless.
func (c *Config) Validate() error {
	if c.LinkMaxDays <= 0 {
		return fmt.Errorf("LINK_MAX_DAYS must be positive, got %d", c.LinkMaxDays)
	}
	if c.LinkMinScore < 0 || c.LinkMinScore >= 1 {
		return fmt.Errorf("LINK_MIN_SCORE must be in [0,1), got %g", c.LinkMinScore)
	}
	if c.LinkDateWeight < 0 || c.LinkNameWeight < 0 {
		return fmt.Errorf("linkage weights must be non-negative")
	}
	sum := c.LinkDateWeight + c.LinkNameWeight
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("LINK_DATE_WEIGHT + LINK_NAME_WEIGHT must sum to 1, got %g", sum)
	}
	if c.PreOpImagingDays < 0 || c.PostOpImagingDays < 0 {
		return fmt.Errorf("imaging window days must be non-negative")
	}
	if c.EncounterToleranceDays < 0 {
		return fmt.Errorf("ENCOUNTER_TOLERANCE_DAYS must be non-negative, got %d", c.EncounterToleranceDays)
	}
	return nil
}
