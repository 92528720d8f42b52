package env

const (
	EnvHttpPort       = "HTTP_PORT"
	EnvGrpcHealthPort = "GRPC_HEALTH_PORT"
	EnvLogLevel       = "LOG_LEVEL"

	EnvLockAttemptTimeout = "LOCK_ATTEMPT_TIMEOUT"
	EnvLockMaxAttempts    = "LOCK_MAX_ATTEMPTS"
	EnvLockRetryDelay     = "LOCK_RETRY_DELAY"

	EnvWebhookURL     = "NOTIFICATION_WEBHOOK_URL"
	EnvJwtSecret      = "JWT_SECRET"
	EnvAllowedOrigins = "CORS_ALLOWED_ORIGINS"

	EnvDbHost       = "DB_HOST"
	EnvDbPort       = "DB_PORT"
	EnvDbUser       = "DB_USER"
	EnvDbPassword   = "DB_PASSWORD"
	EnvDbName       = "DB_NAME"
	EnvDbSslEnabled = "DB_SSL_ENABLED"
)
