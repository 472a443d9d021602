// Package realtime holds configuration for OpenAI realtime speech
// sessions: which model to request, which output modalities, and how
// long an ephemeral session token stays valid.
package realtime

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables consulted by SessionFromEnv.
const (
	EnvModel      = "OPENAI_REALTIME_MODEL"
	EnvModalities = "OPENAI_REALTIME_MODALITIES"
	EnvSessionTTL = "OPENAI_REALTIME_SESSION_TTL_SEC"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultModel      = "gpt-realtime"
	DefaultModality   = "text"
	DefaultSessionTTL = 60
)

// SessionConfig describes a realtime session request. Resolve it once at
// startup and pass it by reference; nothing in this package mutates it
// afterwards.
type SessionConfig struct {
	// Model is the realtime model identifier. Not validated here — a bad
	// model name fails at the API boundary.
	Model string

	// Modalities lists requested output channels in order. Parsed from a
	// comma-separated string with no trimming or deduplication, so
	// "text, audio" yields ["text", " audio"] verbatim.
	Modalities []string

	// TTLSeconds is the ephemeral session token lifetime.
	TTLSeconds int
}

// SessionFromEnv resolves a SessionConfig from the process environment,
// applying defaults for unset variables. A present but malformed TTL is
// an error; callers should treat it as fatal at startup rather than
// falling back silently.
func SessionFromEnv() (SessionConfig, error) {
	cfg := SessionConfig{
		Model:      DefaultModel,
		Modalities: []string{DefaultModality},
		TTLSeconds: DefaultSessionTTL,
	}

	if v, ok := os.LookupEnv(EnvModel); ok {
		cfg.Model = v
	}
	if v, ok := os.LookupEnv(EnvModalities); ok {
		cfg.Modalities = strings.Split(v, ",")
	}
	if v, ok := os.LookupEnv(EnvSessionTTL); ok {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return SessionConfig{}, fmt.Errorf("parse %s=%q: %w", EnvSessionTTL, v, err)
		}
		cfg.TTLSeconds = ttl
	}

	return cfg, nil
}
