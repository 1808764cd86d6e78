// internal/cache/cache_test.go
//
// Option-construction tests; no redis server is dialed.
package cache

import (
	"context"
	"testing"

	"github.com/orbitai/orbit/internal/types"
)

func TestOptionsFromConfig(t *testing.T) {
	opt := optionsFromConfig(types.CacheConfig{
		Host:     "cache",
		Port:     6379,
		DB:       3,
		Password: "hunter2",
	})
	if opt.Addr != "cache:6379" {
		t.Errorf("Addr = %q", opt.Addr)
	}
	if opt.DB != 3 || opt.Password != "hunter2" {
		t.Errorf("opt = %+v", opt)
	}
}

func TestOpen_RejectsMalformedURI(t *testing.T) {
	// Malformed explicit overrides pass through settings untouched; the
	// dial is where they finally surface.
	if _, err := Open(context.Background(), "not even a uri"); err == nil {
		t.Fatal("malformed URI accepted")
	}
}
