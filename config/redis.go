package config

import "time"

// RedisConfig contains Redis configuration for the shared auth snapshot store.
type RedisConfig struct {
	URI      string        `env:"URI"      envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD" envDefault:""`
	DB       int           `env:"DB"       envDefault:"0"`
	Prefix   string        `env:"PREFIX"   envDefault:"summits:auth:"`
	TTL      time.Duration `env:"TTL"      envDefault:"30m"`
}
