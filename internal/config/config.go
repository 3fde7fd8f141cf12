package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port                   string `env:"PORT" envDefault:"8080"`
	DBUser                 string `env:"DB_USER,required"`
	DBPassword             string `env:"DB_PASSWORD,required"`
	DBHost                 string `env:"DB_HOST,required"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName                 string `env:"DB_NAME,required"`
	DBPort                 string `env:"DB_PORT" envDefault:"3306"`
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	RedisAddr         string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" envDefault:"720"`
	CookieSecure      bool   `env:"COOKIE_SECURE" envDefault:"false"`

	// Bucket for vendor product images; uploads are rejected when unset.
	StorageBucket string `env:"STORAGE_BUCKET"`

	CommissionRate         float64 `env:"COMMISSION_RATE" envDefault:"0.05"`
	OrderStrictTransitions bool    `env:"ORDER_STRICT_TRANSITIONS" envDefault:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
