// internal/settings/loader.go
//
// Settings loader.
//
// Context
// -------
// `Load()` builds one immutable `Settings` struct from three layers
// (highest precedence last):
//
//  1. Optional `.env` file in the working directory.
//  2. Optional `conf/settings.yaml`.
//  3. Process environment variables, matched case-sensitively against the
//     koanf tags on the model (`POSTGRES_SERVER` → PostgresServer).
//
// After merging, the tree is unmarshalled onto the defaults, secret
// references are resolved, the aggregate is validated, and the derived
// connection URIs are filled in.  Load is single-shot initialization logic
// invoked once per process lifetime; it returns the aggregate instead of
// caching it, and callers pass it down explicitly.
//
// Failure reporting
// -----------------
// A failed load is always a Validation error (classifier 422) whose
// details name every missing or invalid variable, so one startup attempt
// surfaces the whole damage.
//
// Instrumentation
// ---------------
//   - DEBUG spans — yaml read, env overlay.
//   - ERROR spans — decode, secret resolution, validation failures.
//   - INFO  span  — final "settings loaded" with key highlights.
//   - Logs use the global sugared logger (`zap.S()`) so early boot issues
//     surface even before the file logger is installed.
package settings

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/orbitai/orbit/internal/metrics"
	"github.com/orbitai/orbit/internal/secrets"
	"github.com/orbitai/orbit/internal/types"
)

// yamlPath is the optional static overlay, relative to the working
// directory.  Missing file is not an error.
const yamlPath = "conf/settings.yaml"

// Load reads .env, the optional yaml overlay, and the environment,
// resolves secret references through resolver (nil is allowed when no
// references are used), validates, and derives the connection URIs.
func Load(ctx context.Context, resolver secrets.Resolver) (*Settings, error) {
	// .env (optional, no error if missing)
	_ = godotenv.Load()

	k := koanf.New(".")

	if _, err := os.Stat(yamlPath); err == nil {
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			metrics.SettingsLoadErrorsTotal.Inc()
			zap.S().Errorw("settings yaml load failed", "file", yamlPath, "err", err)
			return nil, fmt.Errorf("settings: load %s: %w", yamlPath, err)
		}
		zap.S().Debugw("settings yaml loaded", "file", yamlPath)
	}

	// Env overlay, case-sensitive, no prefix: variable names ARE the keys.
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		metrics.SettingsLoadErrorsTotal.Inc()
		zap.S().Errorw("settings env overlay failed", "err", err)
		return nil, fmt.Errorf("settings: env overlay: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		metrics.SettingsLoadErrorsTotal.Inc()
		zap.S().Errorw("settings decode failed", "err", err)
		return nil, types.NewValidationError("settings decode failed",
			map[string]types.Value{"decode": types.String(err.Error())})
	}

	bad := resolveSecretRefs(ctx, resolver, &cfg)

	fieldErrs, err := invalidFields(&cfg)
	if err != nil {
		metrics.SettingsLoadErrorsTotal.Inc()
		return nil, fmt.Errorf("settings: validate: %w", err)
	}
	for name, rule := range fieldErrs {
		if _, dup := bad[name]; !dup {
			bad[name] = rule
		}
	}

	if len(bad) > 0 {
		names := make([]string, 0, len(bad))
		details := make(map[string]types.Value, len(bad))
		for name, rule := range bad {
			names = append(names, name)
			details[name] = types.String(rule)
		}
		sort.Strings(names)

		metrics.SettingsLoadErrorsTotal.Inc()
		zap.S().Errorw("settings validation failed", "fields", names)
		return nil, types.NewValidationError("settings validation failed", details)
	}

	cfg.DatabaseURI = AssembleDatabaseURI(&cfg)
	cfg.RedisURI = AssembleCacheURI(&cfg)

	metrics.SettingsLoadTotal.Inc()
	zap.S().Infow("settings loaded",
		"app", cfg.AppName,
		"env", cfg.AppEnv,
		"debug", cfg.Debug,
		"metrics_enabled", cfg.MetricsEnabled,
	)
	return &cfg, nil
}

// resolveSecretRefs swaps `vault:` references for their values in place and
// returns env-var name → reason for every reference that could not be
// resolved.
func resolveSecretRefs(ctx context.Context, resolver secrets.Resolver, cfg *Settings) map[string]string {
	fields := []struct {
		name string
		p    *string
	}{
		{"SECRET_KEY", &cfg.SecretKey},
		{"POSTGRES_PASSWORD", &cfg.PostgresPassword},
		{"REDIS_PASSWORD", &cfg.RedisPassword},
		{"OPENAI_API_KEY", &cfg.OpenAIAPIKey},
		{"ANTHROPIC_API_KEY", &cfg.AnthropicAPIKey},
		{"GOOGLE_API_KEY", &cfg.GoogleAPIKey},
	}

	bad := make(map[string]string)
	for _, f := range fields {
		if !secrets.IsRef(*f.p) {
			continue
		}
		if resolver == nil {
			bad[f.name] = "vault reference but no resolver configured"
			continue
		}
		val, err := resolver.Lookup(ctx, *f.p)
		if err != nil {
			zap.S().Errorw("secret resolution failed", "field", f.name, "err", err)
			bad[f.name] = "vault: " + err.Error()
			continue
		}
		*f.p = val
	}
	return bad
}
