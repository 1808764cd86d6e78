// internal/settings/projections.go
//
// Sub-configuration projections.
//
// Context
// -------
// Each getter maps a slice of the flat Settings into the narrow struct one
// subsystem consumes.  They are pure: no caching, no validation (that
// already happened at load time), recomputed on every call, and therefore
// safe from any number of concurrent readers.
package settings

import (
	"strconv"

	"github.com/orbitai/orbit/internal/types"
)

// DatabaseConfig projects the postgres fields.  Pool sizing uses the
// catalog defaults; POSTGRES_PORT was validated numeric at load time.
func (s *Settings) DatabaseConfig() types.DatabaseConfig {
	port, _ := strconv.Atoi(s.PostgresPort)
	return types.DatabaseConfig{
		Host:        s.PostgresServer,
		Port:        port,
		Database:    s.PostgresDB,
		User:        s.PostgresUser,
		Password:    s.PostgresPassword,
		SSLMode:     types.DefaultSSLMode,
		PoolSize:    types.DefaultPoolSize,
		MaxOverflow: types.DefaultMaxOverflow,
	}
}

// CacheConfig projects the redis fields.
func (s *Settings) CacheConfig() types.CacheConfig {
	return types.CacheConfig{
		Host:     s.RedisHost,
		Port:     s.RedisPort,
		DB:       s.RedisDB,
		Password: s.RedisPassword,
		TTL:      types.DefaultCacheTTL,
	}
}

// LogConfig projects the logging fields.
func (s *Settings) LogConfig() types.LogConfig {
	return types.LogConfig{
		Level:       s.LogLevel,
		Format:      s.LogFormat,
		File:        s.LogFile,
		MaxSize:     s.LogMaxSize,
		BackupCount: s.LogBackupCount,
	}
}

// SecurityConfig projects the auth fields.
func (s *Settings) SecurityConfig() types.SecurityConfig {
	return types.SecurityConfig{
		SecretKey:                s.SecretKey,
		Algorithm:                s.Algorithm,
		AccessTokenExpireMinutes: s.AccessTokenExpireMinutes,
		RefreshTokenExpireDays:   s.RefreshTokenExpireDays,
		AllowedHosts:             s.AllowedHosts,
		CORSOrigins:              s.CORSOrigins,
	}
}

// RateLimitConfig projects the limiter fields.
func (s *Settings) RateLimitConfig() types.RateLimitConfig {
	return types.RateLimitConfig{
		Enabled:           s.RateLimitEnabled,
		RequestsPerMinute: s.RateLimitRequests,
		BurstSize:         s.RateLimitBurst,
		Storage:           s.RateLimitStorage,
	}
}

// MetricsConfig projects the exporter fields.
func (s *Settings) MetricsConfig() types.MetricsConfig {
	return types.MetricsConfig{
		Enabled: s.MetricsEnabled,
		Port:    s.MetricsPort,
		Path:    s.MetricsPath,
		Labels:  map[string]string{},
	}
}
