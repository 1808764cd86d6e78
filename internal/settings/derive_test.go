// internal/settings/derive_test.go
//
// Unit-tests for the derived connection URIs.
//
// Context
// -------
// The assemblers are pure functions with a strict contract: discrete
// fields compose into a deterministic DSN, and an explicit override passes
// through byte-for-byte even when malformed.  These tests pin both halves.
package settings

import "testing"

func discreteFields() Settings {
	return Settings{
		PostgresUser:     "app",
		PostgresPassword: "secret",
		PostgresServer:   "db",
		PostgresPort:     "5432",
		PostgresDB:       "main",

		RedisHost: "cache",
		RedisPort: 6379,
		RedisDB:   0,
	}
}

func TestAssembleDatabaseURI_Discrete(t *testing.T) {
	s := discreteFields()
	got := AssembleDatabaseURI(&s)
	want := "postgresql://app:secret@db:5432/main"
	if got != want {
		t.Fatalf("database URI = %q, want %q", got, want)
	}

	// Idempotent: same inputs, same output.
	if again := AssembleDatabaseURI(&s); again != got {
		t.Fatalf("second call = %q, want %q", again, got)
	}
}

func TestAssembleDatabaseURI_EscapesCredentials(t *testing.T) {
	s := discreteFields()
	s.PostgresPassword = "p@ss:w"
	got := AssembleDatabaseURI(&s)
	want := "postgresql://app:p%40ss%3Aw@db:5432/main"
	if got != want {
		t.Fatalf("database URI = %q, want %q", got, want)
	}
}

func TestAssembleDatabaseURI_PassThrough(t *testing.T) {
	s := discreteFields()
	s.DatabaseURI = "definitely not a URI"
	if got := AssembleDatabaseURI(&s); got != "definitely not a URI" {
		t.Fatalf("override not passed through: %q", got)
	}
}

func TestAssembleCacheURI_WithPassword(t *testing.T) {
	s := discreteFields()
	s.RedisPassword = "hunter2"
	s.RedisDB = 3
	got := AssembleCacheURI(&s)
	want := "redis://:hunter2@cache:6379/3"
	if got != want {
		t.Fatalf("cache URI = %q, want %q", got, want)
	}
}

func TestAssembleCacheURI_NoPassword(t *testing.T) {
	s := discreteFields()
	got := AssembleCacheURI(&s)
	want := "redis://cache:6379/0"
	if got != want {
		t.Fatalf("cache URI = %q, want %q", got, want)
	}
}

func TestAssembleCacheURI_PassThrough(t *testing.T) {
	s := discreteFields()
	s.RedisURI = "rediss://elsewhere:7000/9"
	if got := AssembleCacheURI(&s); got != s.RedisURI {
		t.Fatalf("override not passed through: %q", got)
	}
}
