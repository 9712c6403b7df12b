package config

// EnvPrefix is empty: every variable is spelled out in full on its field tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names shared with tests and deploy tooling.
const (
	EnvAppEnv         = "OPHELIA_APP_ENV"
	EnvAppPort        = "OPHELIA_APP_PORT"
	EnvLogLevel       = "OPHELIA_LOG_LEVEL"
	EnvRedisURL       = "OPHELIA_REDIS_URL"
	EnvCatalogDir     = "OPHELIA_CATALOG_CONTENT_DIR"
	EnvCartTTL        = "OPHELIA_CART_TTL"
	EnvResendAPIKey   = "OPHELIA_RESEND_API_KEY"
	EnvOrderEmailTo   = "OPHELIA_ORDER_EMAIL_TO"
	EnvOrderEmailFrom = "OPHELIA_ORDER_EMAIL_FROM"
)
