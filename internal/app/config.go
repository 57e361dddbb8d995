package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"lizzyHist/internal/infrastructure/click"
	"lizzyHist/internal/infrastructure/kafka"
	"lizzyHist/internal/infrastructure/mongo"
	"lizzyHist/internal/infrastructure/pg"
	"lizzyHist/internal/infrastructure/redis"
)

const AppName = "CALCULATOR"

// Драйверы архива вычислений.
const (
	ArchiveNone  = "none"
	ArchivePg    = "pg"
	ArchiveMongo = "mongo"
)

// HistoryConfig — настройки истории. Переменные: CALCULATOR_HISTORY_*.
type HistoryConfig struct {
	MaxSize     int    `envconfig:"MAX_SIZE" default:"100"`
	File        string `envconfig:"FILE" default:"history.csv"`
	Delimiter   string `envconfig:"DELIMITER" default:","`
	Encoding    string `envconfig:"ENCODING" default:"utf-8"` // имя кодировки по IANA
	AutoSave    bool   `envconfig:"AUTOSAVE" default:"true"`
	LoadOnStart bool   `envconfig:"LOAD_ON_START" default:"true"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	LogLevel string        `envconfig:"LOG_LEVEL" default:"info"`
	History  HistoryConfig `envconfig:"HISTORY"`

	CacheEnabled bool         `envconfig:"CACHE_ENABLED" default:"false"`
	Redis        redis.Config `envconfig:"REDIS"`

	ArchiveDriver string       `envconfig:"ARCHIVE_DRIVER" default:"none"` // none | pg | mongo
	DB            pg.Config    `envconfig:"DB"`
	Mongo         mongo.Config `envconfig:"MONGO"`

	KafkaEnabled bool         `envconfig:"KAFKA_ENABLED" default:"false"`
	Kafka        kafka.Config `envconfig:"KAFKA"`

	ClickEnabled bool         `envconfig:"CLICKHOUSE_ENABLED" default:"false"`
	ClickHouse   click.Config `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру
// из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
