package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort           string        `env:"HTTP_PORT" envDefault:"8080"`
	StoreBackend       string        `env:"STORE_BACKEND" envDefault:"sqlite"`
	SQLitePath         string        `env:"SQLITE_PATH" envDefault:"fitstart.db"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	RedisAddr          string        `env:"REDIS_ADDR"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB" envDefault:"0"`
	PredictorURL       string        `env:"PREDICTOR_URL" envDefault:"http://localhost:5000/predict"`
	PredictorTimeout   time.Duration `env:"PREDICTOR_TIMEOUT" envDefault:"10s"`
	ClassifyRateWindow time.Duration `env:"CLASSIFY_RATE_WINDOW" envDefault:"1m"`
	ClassifyRateMax    int           `env:"CLASSIFY_RATE_MAX" envDefault:"10"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
