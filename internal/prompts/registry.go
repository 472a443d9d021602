package prompts

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
)

// Profile keys. Stable identifiers; consumers select a profile per
// feature (transcription cleanup, readability pass, ask-AI, fact check)
// and the lookup is exact and case-sensitive.
const (
	KeyParaphrase       = "paraphrase-gpt-realtime-enhanced"
	KeyReadability      = "readability-enhance"
	KeyAskAI            = "ask-ai"
	KeyCorrectnessCheck = "correctness-check"
)

// ErrUnknownProfile is returned by Get for a key outside the registry.
// There is no fallback profile; callers must handle the miss.
var ErrUnknownProfile = errors.New("unknown prompt profile")

// Prompt bodies are embedded rather than written as Go string literals:
// the transcription prompt contains backquotes and significant
// whitespace that raw literals cannot carry verbatim.
var (
	//go:embed profiles/paraphrase.txt
	paraphrasePrompt string

	//go:embed profiles/readability.txt
	readabilityPrompt string

	//go:embed profiles/askai.txt
	askAIPrompt string

	//go:embed profiles/correctness.txt
	correctnessPrompt string
)

var registry = map[string]string{
	KeyParaphrase:       paraphrasePrompt,
	KeyReadability:      readabilityPrompt,
	KeyAskAI:            askAIPrompt,
	KeyCorrectnessCheck: correctnessPrompt,
}

// Get returns the prompt body for key, verbatim. Unknown keys return an
// error wrapping [ErrUnknownProfile].
func Get(key string) (string, error) {
	body, ok := registry[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProfile, key)
	}
	return body, nil
}

// Keys returns the registry's key set in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
