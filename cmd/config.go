package cmd

import (
	"errors"
	"fmt"

	"negotiation/internal/pkg/errs"
)

const (
	DefaultHTTPPort             = "8080"
	DefaultLogLevel             = "info"
	DefaultTimeoutSweepSchedule = "0 * * * * *"
	DefaultOutboxRelaySchedule  = "*/5 * * * * *"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	RedisAddress          string
	PubSubProjectID       string
	PubSubTopic           string
	PubSubCredentialsJSON string
	LogLevel              string
	TimeoutSweepSchedule  string
	OutboxRelaySchedule   string
}

// WithDefaults fills the optional keys left empty in the environment.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = DefaultHTTPPort
	}
	if c.DBSslMode == "" {
		c.DBSslMode = "disable"
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.TimeoutSweepSchedule == "" {
		c.TimeoutSweepSchedule = DefaultTimeoutSweepSchedule
	}
	if c.OutboxRelaySchedule == "" {
		c.OutboxRelaySchedule = DefaultOutboxRelaySchedule
	}
	return c
}

// Validate reports every missing required key at once.
func (c Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"REDIS_ADDRESS", c.RedisAddress},
		{"PUBSUB_PROJECT_ID", c.PubSubProjectID},
		{"PUBSUB_TOPIC", c.PubSubTopic},
	}

	var errList []error
	for _, r := range required {
		if r.value == "" {
			errList = append(errList, errs.NewValueIsRequiredError(r.key))
		}
	}
	return errors.Join(errList...)
}

// DSN builds the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
