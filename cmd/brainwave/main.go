// Brainwave is the configuration and prompt layer for a realtime
// voice/LLM application.
//
// The binary inspects what the library packages will hand to the rest of
// the system: the effective realtime session configuration (environment
// variables plus optional config file) and the fixed registry of
// post-processing prompts.
//
// Usage:
//
//	brainwave session        Print the effective realtime session settings
//	brainwave prompts        List prompt profile keys
//	brainwave prompt <key>   Print a prompt body verbatim
//	brainwave init [dir]     Initialize a working directory with defaults
//	brainwave version        Print version and build information
//	brainwave -o json session    Output as JSON
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/syoummer/brainwave/internal/buildinfo"
	"github.com/syoummer/brainwave/internal/config"
	"github.com/syoummer/brainwave/internal/prompts"
)

// main is intentionally minimal. It constructs the OS-level environment
// (context, stdio, argv) and delegates immediately to [run]. This keeps
// os.Exit, os.Stdout, and os.Args out of the application logic so that
// every subcommand can be driven from tests.
func main() {
	ctx := context.Background()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// run is the real entry point for the brainwave command. All OS-level
// dependencies are injected as parameters: stdout and stderr for output,
// args for os.Args[1:]. No current subcommand blocks, so ctx is unused;
// it stays in the signature for any future subcommand that does.
//
// Arguments are parsed by hand. The flag package relies on package-level
// globals (flag.CommandLine), which makes it impossible to call run()
// concurrently from tests, and our argument surface is small.
func run(ctx context.Context, stdout io.Writer, stderr io.Writer, args []string) error {
	var configPath string
	var outputFmt string // "text" (default) or "json"
	var command string
	var cmdArgs []string

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-config" && i+1 < len(args):
			configPath = args[i+1]
			i++ // skip the value
		case strings.HasPrefix(args[i], "-config="):
			configPath = strings.TrimPrefix(args[i], "-config=")
		case (args[i] == "-o" || args[i] == "--output") && i+1 < len(args):
			outputFmt = args[i+1]
			i++
		case strings.HasPrefix(args[i], "-o="):
			outputFmt = strings.TrimPrefix(args[i], "-o=")
		case strings.HasPrefix(args[i], "--output="):
			outputFmt = strings.TrimPrefix(args[i], "--output=")
		case args[i] == "-h" || args[i] == "-help" || args[i] == "--help":
			return printUsage(stdout)
		case !strings.HasPrefix(args[i], "-") && command == "":
			command = args[i]
		default:
			if command != "" {
				// Collect remaining args as subcommand arguments.
				cmdArgs = append(cmdArgs, args[i])
			} else {
				return fmt.Errorf("unknown flag: %s", args[i])
			}
		}
	}

	// Default to human-readable text output.
	if outputFmt == "" {
		outputFmt = "text"
	}
	if outputFmt != "text" && outputFmt != "json" {
		return fmt.Errorf("unknown output format: %q (expected text or json)", outputFmt)
	}

	switch command {
	case "session":
		return runSession(stdout, stderr, configPath, outputFmt)
	case "prompts":
		return runPrompts(stdout, outputFmt)
	case "prompt":
		if len(cmdArgs) == 0 {
			return fmt.Errorf("usage: brainwave prompt <key>")
		}
		return runPrompt(stdout, outputFmt, cmdArgs[0])
	case "init":
		dir := "."
		if len(cmdArgs) > 0 {
			dir = cmdArgs[0]
		}
		return runInit(stdout, dir)
	case "version":
		return runVersion(stdout, outputFmt)
	case "":
		return printUsage(stdout)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// loadConfig resolves the application config. An explicit -config path
// must exist; otherwise a missing config file is fine and defaults apply,
// since the realtime settings are fully resolvable from the environment.
// It also configures the process logger from the config's log_level.
func loadConfig(stderr io.Writer, configPath string) (*config.Config, error) {
	cfg := config.Default()

	path, err := config.FindConfig(configPath)
	switch {
	case err != nil && configPath != "":
		return nil, err
	case err == nil:
		cfg, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: config.ReplaceLogLevelNames,
	}))
	slog.SetDefault(logger)

	return cfg, nil
}

// runSession prints the effective realtime session configuration after
// merging environment variables and the optional config file.
func runSession(stdout, stderr io.Writer, configPath, outputFmt string) error {
	cfg, err := loadConfig(stderr, configPath)
	if err != nil {
		return err
	}

	session, err := cfg.EffectiveSession()
	if err != nil {
		return err
	}
	slog.Debug("resolved realtime session", "model", session.Model, "modalities", session.Modalities, "ttl_sec", session.TTLSeconds)

	if outputFmt == "json" {
		out := struct {
			Model      string   `json:"model"`
			Modalities []string `json:"modalities"`
			TTLSeconds int      `json:"session_ttl_sec"`
		}{session.Model, session.Modalities, session.TTLSeconds}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(stdout, "model:           %s\n", session.Model)
	fmt.Fprintf(stdout, "modalities:      %s\n", strings.Join(session.Modalities, ", "))
	fmt.Fprintf(stdout, "session_ttl_sec: %d\n", session.TTLSeconds)
	return nil
}

// runPrompts lists the registry's profile keys.
func runPrompts(w io.Writer, outputFmt string) error {
	keys := prompts.Keys()
	if outputFmt == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(keys)
	}
	for _, k := range keys {
		fmt.Fprintln(w, k)
	}
	return nil
}

// runPrompt prints a single prompt body. Text output is the body
// verbatim with no decoration, so it can be piped straight into an API
// payload.
func runPrompt(w io.Writer, outputFmt, key string) error {
	body, err := prompts.Get(key)
	if err != nil {
		return err
	}

	if outputFmt == "json" {
		out := struct {
			Key    string `json:"key"`
			Prompt string `json:"prompt"`
		}{key, body}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	_, err = io.WriteString(w, body)
	return err
}

// runVersion prints build metadata in the requested output format.
func runVersion(w io.Writer, outputFmt string) error {
	info := buildinfo.Info()
	if outputFmt == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}
	fmt.Fprintln(w, buildinfo.String())
	// Print fields in a stable order for human readability.
	for _, k := range []string{"version", "git_commit", "git_branch", "build_time", "go_version", "os", "arch"} {
		if v, ok := info[k]; ok {
			fmt.Fprintf(w, "  %-12s %s\n", k+":", v)
		}
	}
	return nil
}

// printUsage writes the top-level help text to w. It is called when
// brainwave is invoked with no arguments, or with -h / --help.
func printUsage(w io.Writer) error {
	fmt.Fprintln(w, "Brainwave - realtime session config and prompt registry")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: brainwave [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  session      Print effective realtime session settings")
	fmt.Fprintln(w, "  prompts      List prompt profile keys")
	fmt.Fprintln(w, "  prompt <key> Print a prompt body verbatim")
	fmt.Fprintln(w, "  init [dir]   Initialize working directory with defaults (default: .)")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -config <path>    Path to config file (default: auto-discover)")
	fmt.Fprintln(w, "  -o, --output fmt  Output format: text (default) or json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config search order:")
	for _, p := range config.DefaultSearchPaths() {
		fmt.Fprintf(w, "  %s\n", p)
	}
	return nil
}
