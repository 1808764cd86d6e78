// internal/secrets/secrets.go
//
// Vault-backed secret reference resolution.
//
// Context
// -------
// Any settings value may be written as a reference instead of a literal:
//
//	SECRET_KEY=vault:secret/orbit/app#secret_key
//
// The loader swaps references for their Vault values before validation, so
// the rest of the backend only ever sees plain strings.  The reference
// grammar is `vault:<mount>/<path>#<key>`, read from the KV-v2 engine.
//
// Client is safe for concurrent use and caches each resolved key for a
// short TTL so repeated loads do not hammer Vault.
//
// Environment expectations
// ------------------------
//   - VAULT_ADDR  – scheme and host of the Vault server.
//   - VAULT_TOKEN – access token; the SDK's usual fallbacks also apply.
package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	vault "github.com/hashicorp/vault/api"

	"github.com/orbitai/orbit/internal/metrics"
)

// RefPrefix marks a settings value as a secret reference.
const RefPrefix = "vault:"

// defaultTTL bounds how long a resolved key is served from cache.
const defaultTTL = 5 * time.Minute

// IsRef reports whether s is a secret reference.
func IsRef(s string) bool { return strings.HasPrefix(s, RefPrefix) }

// Resolver is the narrow interface the settings loader consumes.  Client
// implements it; tests substitute a fake.
type Resolver interface {
	Lookup(ctx context.Context, ref string) (string, error)
}

// Client resolves secret references against Vault's KV-v2 engine.  Zero
// value is invalid; use New.
type Client struct {
	api *vault.Client
	ttl time.Duration

	mu    sync.RWMutex
	cache map[string]cached // ref → value + expiry
}

type cached struct {
	val string
	exp time.Time
}

// New constructs a Client from the VAULT_* environment.
func New() (*Client, error) {
	cfg := vault.DefaultConfig()
	if err := cfg.ReadEnvironment(); err != nil {
		return nil, fmt.Errorf("vault env cfg: %w", err)
	}

	api, err := vault.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault api: %w", err)
	}
	if tok := os.Getenv("VAULT_TOKEN"); tok != "" {
		api.SetToken(tok)
	}

	return &Client{
		api:   api,
		ttl:   defaultTTL,
		cache: make(map[string]cached),
	}, nil
}

// Lookup resolves one reference, serving from cache when fresh.
func (c *Client) Lookup(ctx context.Context, ref string) (string, error) {
	metrics.SecretResolveTotal.Inc()

	mount, path, key, err := parseRef(ref)
	if err != nil {
		metrics.SecretResolveErrorsTotal.Inc()
		return "", err
	}

	c.mu.RLock()
	if hit, ok := c.cache[ref]; ok && time.Now().Before(hit.exp) {
		c.mu.RUnlock()
		return hit.val, nil
	}
	c.mu.RUnlock()

	sec, err := c.api.KVv2(mount).Get(ctx, path)
	if err != nil {
		metrics.SecretResolveErrorsTotal.Inc()
		return "", fmt.Errorf("vault read %s/%s: %w", mount, path, err)
	}

	raw, ok := sec.Data[key].(string)
	if !ok {
		metrics.SecretResolveErrorsTotal.Inc()
		return "", fmt.Errorf("vault read %s/%s: key %q missing or not a string", mount, path, key)
	}

	c.mu.Lock()
	c.cache[ref] = cached{val: raw, exp: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return raw, nil
}

// parseRef splits `vault:<mount>/<path>#<key>` into its parts.
func parseRef(ref string) (mount, path, key string, err error) {
	body, ok := strings.CutPrefix(ref, RefPrefix)
	if !ok {
		return "", "", "", fmt.Errorf("secrets: %q is not a vault reference", ref)
	}

	body, key, ok = strings.Cut(body, "#")
	if !ok || key == "" {
		return "", "", "", fmt.Errorf("secrets: reference %q is missing the #key suffix", ref)
	}

	mount, path, ok = strings.Cut(body, "/")
	if !ok || mount == "" || path == "" {
		return "", "", "", fmt.Errorf("secrets: reference %q is missing the mount/path body", ref)
	}
	return mount, path, key, nil
}
