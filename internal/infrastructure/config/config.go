package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	JWTTTL     time.Duration `env:"JWT_TTL,     default=24h"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=http://localhost:3000"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=notes_app"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type RateLimitConfig struct {
	Max    int64         `env:"RATE_LIMIT_MAX_REQUESTS, default=100"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW,       default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
