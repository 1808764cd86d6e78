// internal/settings/model.go
//
// Typed settings model for the Orbit backend.
//
// Context
// -------
// This struct defines the shape of the flat settings tree that
// `internal/settings/loader.go` builds from three overlay layers:
//
//   - optional `.env`                – dotenv values,
//   - optional `conf/settings.yaml`  – static file overrides,
//   - process environment variables  – highest precedence.
//
// Koanf tags carry the exact, case-sensitive variable names, so
// `POSTGRES_SERVER` in the environment lands on PostgresServer with no
// mapping table.  Any secret-bearing value whose string begins with the
// prefix `vault:` is resolved through the secrets client before
// validation, so the model never stores Vault references, only plain
// strings.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing, and the failure names every bad field at
// once.
//
// Notes
// -----
//   - POSTGRES_PORT stays a string on purpose: the contract is "coerces to
//     a numeric string", and the DatabaseConfig projection converts it.
//   - DatabaseURI and RedisURI are pass-through when supplied explicitly,
//     even when malformed.  Derivation only fills the blanks.
package settings

// Settings is the immutable aggregate returned by Load.  Construct it once
// at process entry and hand it down; there is no package-level instance.
type Settings struct {
	// Application
	AppName     string `koanf:"APP_NAME"`
	AppEnv      string `koanf:"APP_ENV"`
	Debug       bool   `koanf:"DEBUG"`
	APIV1Prefix string `koanf:"API_V1_PREFIX"`

	// Security
	SecretKey                string   `koanf:"SECRET_KEY" validate:"required"`
	Algorithm                string   `koanf:"ALGORITHM" validate:"required"`
	AccessTokenExpireMinutes int      `koanf:"ACCESS_TOKEN_EXPIRE_MINUTES" validate:"gte=1"`
	RefreshTokenExpireDays   int      `koanf:"REFRESH_TOKEN_EXPIRE_DAYS" validate:"gte=1"`
	AllowedHosts             []string `koanf:"ALLOWED_HOSTS"`
	CORSOrigins              []string `koanf:"CORS_ORIGINS"`

	// Database
	PostgresServer   string `koanf:"POSTGRES_SERVER" validate:"required"`
	PostgresUser     string `koanf:"POSTGRES_USER" validate:"required"`
	PostgresPassword string `koanf:"POSTGRES_PASSWORD" validate:"required"`
	PostgresDB       string `koanf:"POSTGRES_DB" validate:"required"`
	PostgresPort     string `koanf:"POSTGRES_PORT" validate:"required,numeric"`
	DatabaseURI      string `koanf:"DATABASE_URI"`

	// Cache
	RedisHost     string `koanf:"REDIS_HOST" validate:"required"`
	RedisPort     int    `koanf:"REDIS_PORT" validate:"required,gte=1,lte=65535"`
	RedisPassword string `koanf:"REDIS_PASSWORD"`
	RedisDB       int    `koanf:"REDIS_DB" validate:"gte=0"`
	RedisURI      string `koanf:"REDIS_URI"`

	// AI providers
	OpenAIAPIKey    string `koanf:"OPENAI_API_KEY" validate:"required"`
	AnthropicAPIKey string `koanf:"ANTHROPIC_API_KEY"`
	GoogleAPIKey    string `koanf:"GOOGLE_API_KEY"`

	// Logging
	LogLevel       string `koanf:"LOG_LEVEL" validate:"required"`
	LogFormat      string `koanf:"LOG_FORMAT"`
	LogFile        string `koanf:"LOG_FILE"`
	LogMaxSize     int    `koanf:"LOG_MAX_SIZE" validate:"gte=0"`
	LogBackupCount int    `koanf:"LOG_BACKUP_COUNT" validate:"gte=0"`

	// Rate limiting
	RateLimitEnabled  bool   `koanf:"RATE_LIMIT_ENABLED"`
	RateLimitRequests int    `koanf:"RATE_LIMIT_REQUESTS" validate:"gte=1"`
	RateLimitBurst    int    `koanf:"RATE_LIMIT_BURST" validate:"gte=1"`
	RateLimitStorage  string `koanf:"RATE_LIMIT_STORAGE" validate:"oneof=memory redis"`

	// Metrics
	MetricsEnabled bool   `koanf:"METRICS_ENABLED"`
	MetricsPort    int    `koanf:"METRICS_PORT" validate:"gte=1,lte=65535"`
	MetricsPath    string `koanf:"METRICS_PATH" validate:"required"`
}

// defaults seeds the aggregate before the overlays are unmarshalled on
// top.  Values mirror the deployment defaults the rest of the backend
// assumes.
func defaults() Settings {
	return Settings{
		AppName:     "Orbit AI Backend",
		AppEnv:      "development",
		APIV1Prefix: "/api/v1",

		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 30,
		RefreshTokenExpireDays:   7,

		RedisDB: 0,

		LogLevel:       "INFO",
		LogFormat:      "json",
		LogMaxSize:     10 * 1024 * 1024,
		LogBackupCount: 5,

		RateLimitEnabled:  true,
		RateLimitRequests: 60,
		RateLimitBurst:    10,
		RateLimitStorage:  "memory",

		MetricsEnabled: true,
		MetricsPort:    9090,
		MetricsPath:    "/metrics",
	}
}
