// internal/types/config.go
//
// Sub-configuration projections.
//
// Context
// -------
// Each struct here is the narrow view one subsystem receives from the
// process-wide Settings: the database layer never sees the secret key, the
// logger never sees datastore credentials.  The structs are plain data;
// validation happened when Settings loaded, so nothing is re-checked here.
package types

import (
	"net"
	"strconv"
)

// Defaults inherited by projections for fields Settings does not carry.
const (
	DefaultSSLMode     = "prefer"
	DefaultPoolSize    = 5
	DefaultMaxOverflow = 10
	DefaultCacheTTL    = 3600 // seconds
)

// DatabaseConfig is the postgres view of Settings.
type DatabaseConfig struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Database    string `json:"database"`
	User        string `json:"user"`
	Password    string `json:"password"`
	SSLMode     string `json:"ssl_mode"`
	PoolSize    int    `json:"pool_size"`
	MaxOverflow int    `json:"max_overflow"`
}

// Addr returns host:port for dialing.
func (c DatabaseConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// CacheConfig is the redis view of Settings.
type CacheConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DB       int    `json:"db"`
	Password string `json:"password,omitempty"`
	TTL      int    `json:"ttl"` // seconds
}

// Addr returns host:port for dialing.
func (c CacheConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LogConfig drives logger construction: level and encoder format, plus an
// optional file sink with size-based rotation.  An empty File means stdout
// only.
type LogConfig struct {
	Level       string `json:"level"`
	Format      string `json:"format"`
	File        string `json:"file,omitempty"`
	MaxSize     int    `json:"max_size"` // bytes
	BackupCount int    `json:"backup_count"`
}

// SecurityConfig is the auth layer's view of Settings.
type SecurityConfig struct {
	SecretKey                string   `json:"secret_key"`
	Algorithm                string   `json:"algorithm"`
	AccessTokenExpireMinutes int      `json:"access_token_expire_minutes"`
	RefreshTokenExpireDays   int      `json:"refresh_token_expire_days"`
	AllowedHosts             []string `json:"allowed_hosts"`
	CORSOrigins              []string `json:"cors_origins"`
}

// RateLimitConfig is the limiter's view of Settings.  Storage is either
// "memory" or "redis".
type RateLimitConfig struct {
	Enabled           bool   `json:"enabled"`
	RequestsPerMinute int    `json:"requests_per_minute"`
	BurstSize         int    `json:"burst_size"`
	Storage           string `json:"storage"`
}

// MetricsConfig is the exporter's view of Settings.
type MetricsConfig struct {
	Enabled bool              `json:"enabled"`
	Port    int               `json:"port"`
	Path    string            `json:"path"`
	Labels  map[string]string `json:"labels"`
}
