package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	ViaCEPURL        string `env:"VIACEP_URL" envDefault:"https://viacep.com.br"`
	JWT              JWT
	Kafka            Kafka
}

type JWT struct {
	Secret            string        `env:"JWT_SECRET"`
	AccessTokenExpiry time.Duration `env:"JWT_ACCESS_TOKEN_EXPIRY" envDefault:"1h"`
}

type Kafka struct {
	Brokers          []string `env:"KAFKA_BROKERS"`
	OrderEventsTopic string   `env:"KAFKA_ORDER_EVENTS_TOPIC" envDefault:"order-events"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
