// Package prompts is the registry of instruction prompts Brainwave sends
// to a language model to post-process transcribed or user-submitted text.
//
// Each profile is a static instruction string — no interpolation, no
// shared fragments — compiled into the binary from a file under
// profiles/. The wording of a prompt IS its behavior: the model enforces
// the rules, this package only guarantees byte-exact delivery, so edits
// to the profile files change what the model does and belong in code
// review, not configuration.
//
// Profiles are looked up by exact key via [Get]; the key set is fixed at
// compile time and enumerable via [Keys].
package prompts
