package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type (
	APP struct {
		Name     string
		Host     string
		Port     string
		Env      string
		LogLevel string
	}
	DB struct {
		User        string
		Password    string
		Name        string
		Host        string
		Port        string
		SSLMode     string
		MaxConns    int32
		ConnMaxIdle time.Duration
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}
	Tracing struct {
		Endpoint    string
		ServiceName string
		SampleRatio float64
	}

	Config struct {
		App     APP
		DB      DB
		MQ      MQ
		Tracing Tracing
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt32(key string, def int32) int32 {
	n, err := strconv.ParseInt(getEnv(key, ""), 10, 32)
	if err != nil {
		return def
	}
	return int32(n)
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return def
	}
	return d
}

func getEnvFloat(key string, def float64) float64 {
	f, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return def
	}
	return f
}

func Load() Config {
	app := APP{
		Name:     getEnv("SERVICE_NAME", "civicissues"),
		Host:     getEnv("SERVICE_HOST", ""),
		Port:     getEnv("SERVICE_PORT", "8080"),
		Env:      getEnv("SERVICE_ENV", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
	db := DB{
		User:        getEnv("POSTGRES_USER", ""),
		Password:    getEnv("POSTGRES_PASSWORD", ""),
		Name:        getEnv("POSTGRES_DB", ""),
		Host:        getEnv("POSTGRES_HOST", ""),
		Port:        getEnv("POSTGRES_PORT", "5432"),
		SSLMode:     getEnv("POSTGRES_SSLMODE", "disable"),
		MaxConns:    getEnvInt32("POSTGRES_MAX_CONNS", 0),
		ConnMaxIdle: getEnvDuration("POSTGRES_CONN_MAX_IDLE", 0),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", "5672"),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", "civicissues.events"),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", "topic"),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", "civicissues.audit"),
	}
	tracing := Tracing{
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName: getEnv("OTEL_SERVICE_NAME", app.Name),
		SampleRatio: getEnvFloat("OTEL_TRACES_SAMPLE_RATIO", 1),
	}

	return Config{
		App:     app,
		DB:      db,
		MQ:      mq,
		Tracing: tracing,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=%s",
		url.UserPassword(c.DB.User, c.DB.Password).String(),
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
		url.QueryEscape(c.DB.SSLMode),
	), nil
}

// EventsEnabled reports whether a broker is configured.
func (c Config) EventsEnabled() bool { return c.MQ.Host != "" }

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
