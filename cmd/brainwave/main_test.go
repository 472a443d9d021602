package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/syoummer/brainwave/internal/prompts"
)

// writeConfig creates a config file in a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRun_Usage(t *testing.T) {
	var out, errBuf bytes.Buffer
	if err := run(context.Background(), &out, &errBuf, nil); err != nil {
		t.Fatalf("run with no args should print usage, got error: %v", err)
	}
	if !strings.Contains(out.String(), "Usage: brainwave") {
		t.Error("expected usage text")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	var out, errBuf bytes.Buffer
	err := run(context.Background(), &out, &errBuf, []string{"bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("expected unknown command error, got %v", err)
	}
}

func TestRun_UnknownOutputFormat(t *testing.T) {
	var out, errBuf bytes.Buffer
	err := run(context.Background(), &out, &errBuf, []string{"-o", "yaml", "version"})
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("expected output format error, got %v", err)
	}
}

func TestRun_VersionJSON(t *testing.T) {
	var out, errBuf bytes.Buffer
	if err := run(context.Background(), &out, &errBuf, []string{"-o", "json", "version"}); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	var info map[string]string
	if err := json.Unmarshal(out.Bytes(), &info); err != nil {
		t.Fatalf("version output is not valid JSON: %v", err)
	}
	if info["version"] == "" {
		t.Error("version field missing from JSON output")
	}
}

func TestRun_PromptsList(t *testing.T) {
	var out, errBuf bytes.Buffer
	if err := run(context.Background(), &out, &errBuf, []string{"prompts"}); err != nil {
		t.Fatalf("prompts failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("prompts listed %d keys, want 4: %v", len(lines), lines)
	}
	for _, key := range []string{"ask-ai", "correctness-check", "paraphrase-gpt-realtime-enhanced", "readability-enhance"} {
		if !strings.Contains(out.String(), key) {
			t.Errorf("prompts output missing key %q", key)
		}
	}
}

func TestRun_PromptVerbatim(t *testing.T) {
	var out, errBuf bytes.Buffer
	if err := run(context.Background(), &out, &errBuf, []string{"prompt", prompts.KeyAskAI}); err != nil {
		t.Fatalf("prompt failed: %v", err)
	}

	want, err := prompts.Get(prompts.KeyAskAI)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if out.String() != want {
		t.Error("prompt output is not the registry body verbatim")
	}
}

func TestRun_PromptUnknownKey(t *testing.T) {
	var out, errBuf bytes.Buffer
	err := run(context.Background(), &out, &errBuf, []string{"prompt", "nope"})
	if err == nil {
		t.Fatal("prompt with unknown key should error")
	}
	if out.Len() != 0 {
		t.Error("no prompt text should be written for an unknown key")
	}
}

func TestRun_PromptMissingArg(t *testing.T) {
	var out, errBuf bytes.Buffer
	err := run(context.Background(), &out, &errBuf, []string{"prompt"})
	if err == nil || !strings.Contains(err.Error(), "usage:") {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestRun_SessionFromEnv(t *testing.T) {
	t.Setenv("OPENAI_REALTIME_MODEL", "test-model")
	t.Setenv("OPENAI_REALTIME_MODALITIES", "text,audio")
	t.Setenv("OPENAI_REALTIME_SESSION_TTL_SEC", "90")
	cfgPath := writeConfig(t, "log_level: error\n")

	var out, errBuf bytes.Buffer
	args := []string{"-config", cfgPath, "-o", "json", "session"}
	if err := run(context.Background(), &out, &errBuf, args); err != nil {
		t.Fatalf("session failed: %v", err)
	}

	var got struct {
		Model      string   `json:"model"`
		Modalities []string `json:"modalities"`
		TTLSeconds int      `json:"session_ttl_sec"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("session output is not valid JSON: %v", err)
	}
	if got.Model != "test-model" {
		t.Errorf("model = %q, want %q", got.Model, "test-model")
	}
	if len(got.Modalities) != 2 || got.Modalities[0] != "text" || got.Modalities[1] != "audio" {
		t.Errorf("modalities = %v, want [text audio]", got.Modalities)
	}
	if got.TTLSeconds != 90 {
		t.Errorf("session_ttl_sec = %d, want 90", got.TTLSeconds)
	}
}

func TestRun_SessionConfigOverride(t *testing.T) {
	t.Setenv("OPENAI_REALTIME_MODEL", "env-model")
	cfgPath := writeConfig(t, "realtime:\n  model: file-model\n")

	var out, errBuf bytes.Buffer
	args := []string{"-config=" + cfgPath, "session"}
	if err := run(context.Background(), &out, &errBuf, args); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if !strings.Contains(out.String(), "file-model") {
		t.Errorf("expected file override in output, got:\n%s", out.String())
	}
}

func TestRun_SessionMalformedTTL(t *testing.T) {
	t.Setenv("OPENAI_REALTIME_SESSION_TTL_SEC", "abc")
	cfgPath := writeConfig(t, "")

	var out, errBuf bytes.Buffer
	err := run(context.Background(), &out, &errBuf, []string{"-config", cfgPath, "session"})
	if err == nil {
		t.Fatal("session with malformed TTL should error")
	}
}

func TestRun_SessionMissingExplicitConfig(t *testing.T) {
	var out, errBuf bytes.Buffer
	err := run(context.Background(), &out, &errBuf, []string{"-config", "/nonexistent/config.yaml", "session"})
	if err == nil {
		t.Fatal("session with missing explicit config should error")
	}
}
