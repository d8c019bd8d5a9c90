package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server struct {
		Port         string        `default:"8080" envconfig:"PORT"`
		ReadTimeout  time.Duration `default:"30s" envconfig:"READ_TIMEOUT"`
		WriteTimeout time.Duration `default:"30s" envconfig:"WRITE_TIMEOUT"`
	}

	Storage struct {
		DataDir string `default:"./data"`
	}

	Recommend struct {
		DefaultTopK         int     `default:"10" envconfig:"RECOMMEND_DEFAULT_TOP_K"`
		DefaultThreshold    float64 `default:"0.0" envconfig:"RECOMMEND_DEFAULT_THRESHOLD"`
		DefaultCompleteTopK int     `default:"1" envconfig:"RECOMMEND_DEFAULT_COMPLETE_TOP_K"`
	}
}

// Load reads the process environment into a Config. Storage.DataDir is
// resolved by hand rather than through an envconfig tag: it tries three
// distinct variable names in order and falls back to a default only when
// all three are empty, which envconfig's single-tag precedence model has no
// way to express.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	cfg.Storage.DataDir = resolveDataDir()
	return &cfg, nil
}

func resolveDataDir() string {
	for _, name := range []string{"DATA_DIR", "KG_DATA_DIR", "STORAGE_DIR"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return "./data"
}
