package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/database"
	"github.com/Lexv0lk/transfer-engine/internal/pkg/env"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
)

const (
	defaultHttpPort       = ":8080"
	defaultGrpcHealthPort = ":9090"
	defaultLogLevel       = "info"
	defaultDbPort         = "5432"
)

var ErrPortMissing = errors.New("port must not be empty")

type TransferConfig struct {
	HttpPort       string
	GrpcHealthPort string
	LogLevel       string

	LockPolicy domain.LockPolicy

	WebhookURL     string
	JwtSecret      string
	AllowedOrigins []string

	DbSettings database.PostgresSettings
}

func DefaultTransferConfig() TransferConfig {
	return TransferConfig{
		HttpPort:       defaultHttpPort,
		GrpcHealthPort: defaultGrpcHealthPort,
		LogLevel:       defaultLogLevel,
		LockPolicy:     domain.DefaultLockPolicy(),
		AllowedOrigins: []string{"http://localhost:18080"},
		DbSettings: database.PostgresSettings{
			Port: defaultDbPort,
		},
	}
}

// LoadTransferConfig starts from the defaults, loads the given dotenv files
// and applies the process environment on top.
func LoadTransferConfig(envFiles ...string) (TransferConfig, error) {
	cfg := DefaultTransferConfig()

	if err := env.LoadDotEnv(envFiles...); err != nil {
		return TransferConfig{}, err
	}

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvGrpcHealthPort, &cfg.GrpcHealthPort)
	env.TrySetFromEnv(env.EnvLogLevel, &cfg.LogLevel)
	env.TrySetFromEnv(env.EnvWebhookURL, &cfg.WebhookURL)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)
	env.TrySetListFromEnv(env.EnvAllowedOrigins, &cfg.AllowedOrigins)

	env.TrySetFromEnv(env.EnvDbHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDbPort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDbUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDbPassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDbName, &cfg.DbSettings.DBName)

	err := errors.Join(
		env.TrySetDurationFromEnv(env.EnvLockAttemptTimeout, &cfg.LockPolicy.AttemptTimeout),
		env.TrySetIntFromEnv(env.EnvLockMaxAttempts, &cfg.LockPolicy.MaxAttempts),
		env.TrySetDurationFromEnv(env.EnvLockRetryDelay, &cfg.LockPolicy.RetryDelay),
		env.TrySetBoolFromEnv(env.EnvDbSslEnabled, &cfg.DbSettings.SSlEnabled),
	)
	if err != nil {
		return TransferConfig{}, err
	}

	cfg.HttpPort = normalizePort(cfg.HttpPort)
	cfg.GrpcHealthPort = normalizePort(cfg.GrpcHealthPort)

	if err := cfg.Validate(); err != nil {
		return TransferConfig{}, err
	}

	return cfg, nil
}

func (c TransferConfig) Validate() error {
	if c.HttpPort == "" || c.GrpcHealthPort == "" {
		return ErrPortMissing
	}

	if err := c.LockPolicy.Validate(); err != nil {
		return fmt.Errorf("invalid lock policy: %w", err)
	}

	return nil
}

// normalizePort accepts both "8080" and ":8080".
func normalizePort(port string) string {
	if port == "" || strings.Contains(port, ":") {
		return port
	}

	return ":" + port
}
