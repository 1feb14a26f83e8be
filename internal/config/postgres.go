package config

import (
	"fmt"
	"os"
)

const (
	postgresDSNEnv      = "POSTGRES_DSN"
	postgresHostEnv     = "POSTGRES_HOST"
	postgresPortEnv     = "POSTGRES_PORT"
	postgresUserEnv     = "POSTGRES_USER"
	postgresPasswordEnv = "POSTGRES_PASSWORD"
	postgresDatabaseEnv = "POSTGRES_DB"

	defaultPostgresHost     = "localhost"
	defaultPostgresPort     = "5432"
	defaultPostgresUser     = "taskplanner"
	defaultPostgresDatabase = "taskplanner"
)

type PostgresConfig struct {
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

func LoadPostgresConfig() *PostgresConfig {
	return &PostgresConfig{
		DSN:      os.Getenv(postgresDSNEnv),
		Host:     getEnvOrDefault(postgresHostEnv, defaultPostgresHost),
		Port:     getEnvOrDefault(postgresPortEnv, defaultPostgresPort),
		User:     getEnvOrDefault(postgresUserEnv, defaultPostgresUser),
		Password: os.Getenv(postgresPasswordEnv),
		Database: getEnvOrDefault(postgresDatabaseEnv, defaultPostgresDatabase),
	}
}

// ConnString returns the explicit DSN when set, otherwise one built
// from the individual connection fields.
func (c *PostgresConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Database,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
