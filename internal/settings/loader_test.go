// internal/settings/loader_test.go
//
// Unit-tests for the settings loader.
//
// Context
// -------
// Load reads the real process environment, so every test seeds it through
// t.Setenv (which restores the previous state on cleanup).  The fake
// resolver stands in for Vault; no network is touched anywhere.
package settings

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/orbitai/orbit/internal/types"
)

// setRequiredEnv seeds the minimum variables a load needs, and blanks the
// URI overrides so derivation is exercised regardless of ambient state.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("POSTGRES_SERVER", "db")
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "main")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DATABASE_URI", "")
	t.Setenv("REDIS_URI", "")
}

func TestLoad_DefaultsAndDerivation(t *testing.T) {
	setRequiredEnv(t)

	s, err := Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.Algorithm != "HS256" {
		t.Errorf("Algorithm = %q, want HS256", s.Algorithm)
	}
	if s.AccessTokenExpireMinutes != 30 || s.RefreshTokenExpireDays != 7 {
		t.Errorf("token expiries = %d/%d, want 30/7",
			s.AccessTokenExpireMinutes, s.RefreshTokenExpireDays)
	}
	if s.RateLimitRequests != 60 || s.RateLimitBurst != 10 || s.RateLimitStorage != "memory" {
		t.Errorf("rate-limit defaults wrong: %+v", s.RateLimitConfig())
	}
	if s.MetricsPort != 9090 || s.MetricsPath != "/metrics" {
		t.Errorf("metrics defaults wrong: %d %q", s.MetricsPort, s.MetricsPath)
	}

	if want := "postgresql://app:secret@db:5432/main"; s.DatabaseURI != want {
		t.Errorf("DatabaseURI = %q, want %q", s.DatabaseURI, want)
	}
	if want := "redis://cache:6379/0"; s.RedisURI != want {
		t.Errorf("RedisURI = %q, want %q", s.RedisURI, want)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RATE_LIMIT_REQUESTS", "120")
	t.Setenv("ALLOWED_HOSTS", "a.example.com,b.example.com")
	t.Setenv("METRICS_ENABLED", "false")

	s, err := Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.RateLimitRequests != 120 {
		t.Errorf("RateLimitRequests = %d, want 120", s.RateLimitRequests)
	}
	if len(s.AllowedHosts) != 2 || s.AllowedHosts[1] != "b.example.com" {
		t.Errorf("AllowedHosts = %v", s.AllowedHosts)
	}
	if s.MetricsEnabled {
		t.Error("MetricsEnabled should be overridden to false")
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SECRET_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load(context.Background(), nil)
	if err == nil {
		t.Fatal("Load succeeded with missing required fields")
	}

	var ae *types.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("error type = %T, want *types.APIError", err)
	}
	if ae.Kind != types.KindValidation || ae.Status != 422 {
		t.Fatalf("kind/status = %v/%d, want validation/422", ae.Kind, ae.Status)
	}
	for _, field := range []string{"SECRET_KEY", "OPENAI_API_KEY"} {
		if _, ok := ae.Details[field]; !ok {
			t.Errorf("details missing %s: %v", field, ae.Details)
		}
	}
}

func TestLoad_BadCoercion(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_PORT", "not-a-number")

	_, err := Load(context.Background(), nil)
	if err == nil {
		t.Fatal("Load succeeded with non-numeric REDIS_PORT")
	}
	if kind, ok := types.KindOf(err); !ok || kind != types.KindValidation {
		t.Fatalf("kind = %v (ok=%v), want validation", kind, ok)
	}
}

func TestLoad_NonNumericPostgresPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POSTGRES_PORT", "fivefourthreetwo")

	_, err := Load(context.Background(), nil)
	if err == nil {
		t.Fatal("Load succeeded with non-numeric POSTGRES_PORT")
	}

	var ae *types.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("error type = %T, want *types.APIError", err)
	}
	if _, ok := ae.Details["POSTGRES_PORT"]; !ok {
		t.Errorf("details missing POSTGRES_PORT: %v", ae.Details)
	}
}

func TestLoad_ExplicitURIPassThrough(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URI", "postgresql://elsewhere/override")
	t.Setenv("REDIS_URI", "not even a uri")

	s, err := Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.DatabaseURI != "postgresql://elsewhere/override" {
		t.Errorf("DatabaseURI = %q", s.DatabaseURI)
	}
	// Malformed overrides are accepted silently; that is the contract.
	if s.RedisURI != "not even a uri" {
		t.Errorf("RedisURI = %q", s.RedisURI)
	}
}

//
// secret references
//

type fakeResolver struct {
	values map[string]string
	err    error
}

func (f *fakeResolver) Lookup(_ context.Context, ref string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	val, ok := f.values[ref]
	if !ok {
		return "", fmt.Errorf("no such ref %q", ref)
	}
	return val, nil
}

func TestLoad_ResolvesVaultRefs(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SECRET_KEY", "vault:secret/orbit/app#secret_key")

	r := &fakeResolver{values: map[string]string{
		"vault:secret/orbit/app#secret_key": "from-vault",
	}}

	s, err := Load(context.Background(), r)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.SecretKey != "from-vault" {
		t.Errorf("SecretKey = %q, want from-vault", s.SecretKey)
	}
}

func TestLoad_VaultRefWithoutResolver(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SECRET_KEY", "vault:secret/orbit/app#secret_key")

	_, err := Load(context.Background(), nil)
	if err == nil {
		t.Fatal("Load succeeded with unresolvable vault reference")
	}

	var ae *types.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("error type = %T, want *types.APIError", err)
	}
	if _, ok := ae.Details["SECRET_KEY"]; !ok {
		t.Errorf("details missing SECRET_KEY: %v", ae.Details)
	}
}

func TestLoad_VaultLookupFailure(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OPENAI_API_KEY", "vault:secret/orbit/ai#openai")

	r := &fakeResolver{err: errors.New("sealed")}

	_, err := Load(context.Background(), r)
	if err == nil {
		t.Fatal("Load succeeded despite resolver failure")
	}
	if types.StatusOf(err) != 422 {
		t.Errorf("status = %d, want 422", types.StatusOf(err))
	}
}
