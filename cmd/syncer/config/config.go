package config

import (
	"time"

	"github.com/dealhaven/dealsync/internal/sourceapi"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string        `env:"DATABASE_URL"`
	BatchSize       uint          `env:"BATCH_SIZE" envDefault:"50"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	PartnerTag      string        `env:"PARTNER_TAG"`
	EnrichmentLimit int           `env:"ENRICHMENT_LIMIT" envDefault:"5"`

	SourceAPI sourceapi.Config
	RabbitMQ  RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"dealsync-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"dealsync.commands"`
}
