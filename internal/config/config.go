package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/emoji-popup-picker/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envDataDir   = "EMOJI_POPUP_PICKER_DATA_DIR"
	envEmojiFile = "EMOJI_POPUP_PICKER_EMOJI_FILE"
	envWidth     = "EMOJI_POPUP_PICKER_WIDTH"
	envHeight    = "EMOJI_POPUP_PICKER_HEIGHT"
	envFooter    = "EMOJI_POPUP_PICKER_FOOTER"
	envOneShot   = "EMOJI_POPUP_PICKER_ONE_SHOT"
	envVerbose   = "EMOJI_POPUP_PICKER_VERBOSE"
	envTrace     = "EMOJI_POPUP_PICKER_TRACE"
	envLogFile   = "EMOJI_POPUP_PICKER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("emoji-popup-picker", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dataDir := fs.String("data-dir", envOrDefault(env, envDataDir, ""), "directory holding settings.json and ranks.json (defaults to the user config dir)")
	emojiFile := fs.String("emoji-file", envOrDefault(env, envEmojiFile, ""), "path to an emoji dataset JSON file (empty uses the embedded dataset)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "panel width in cells (0 uses the persisted setting)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "panel height in rows (0 uses the persisted setting)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "enable footer hint row (disabled by default)")
	oneShot := fs.Bool("one-shot", envOrBool(env, envOneShot, true), "exit after a symbol is picked")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			DataDir:    *dataDir,
			EmojiFile:  *emojiFile,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			OneShot:    *oneShot,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"dataDir":   *dataDir,
			"emojiFile": *emojiFile,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"oneShot":   strconv.FormatBool(*oneShot),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.EmojiFile != "" {
		if _, err := os.Stat(cfg.App.EmojiFile); err != nil {
			return fmt.Errorf("emoji file: %w", err)
		}
	}
	return nil
}
