package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds every environment-driven setting of the service.
// .env files are loaded by godotenv/autoload in main before this runs.

type Config struct {
	Server   Server
	Store    Store
	AWS      AWS
	Ledger   Ledger
	Payments Payments
}

type Server struct {
	Port int `env:"PORT" env-default:"8080"`
}

// Store selects the agreement store backend. "file" keeps the whole
// document in a single JSON file; "dynamodb" keeps one item per buyer.
type Store struct {
	Backend         string `env:"STORE_BACKEND" env-default:"file"`
	AgreementsFile  string `env:"AGREEMENTS_FILE" env-default:"agreements.json"`
	AgreementsTable string `env:"AGREEMENTS_TABLE" env-default:"agreements"`
}

// AWS backs the dynamodb store backend. DynamoEndpoint points the client
// at a local instance (e.g. http://dynamodb:8000), which ignores
// credentials but still requires some, hence the throwaway defaults.
type AWS struct {
	Region          string `env:"AWS_REGION" env-default:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	DynamoEndpoint  string `env:"DYNAMODB_ENDPOINT"`
}

// Ledger configures where agreement and installment records are logged.
// Sink is "mock", "file" (HTTP file-service bridge) or "kafka".
type Ledger struct {
	Sink     string        `env:"LEDGER_SINK" env-default:"mock"`
	Endpoint string        `env:"LEDGER_ENDPOINT"`
	Timeout  time.Duration `env:"LEDGER_TIMEOUT" env-default:"10s"`
	Brokers  []string      `env:"LEDGER_KAFKA_BROKERS"`
	Topic    string        `env:"LEDGER_KAFKA_TOPIC" env-default:"bnpl-ledger"`
}

type Payments struct {
	MerchantID string `env:"MERCHANT_ID" env-default:"0.0.3"`
	OperatorID string `env:"OPERATOR_ID" env-default:"0.0.123456"`
}

func MustLoad() Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config from environment: %v", err)
	}
	return cfg
}
