package beeper

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// EnvOption customizes FromEnv.
type EnvOption func(*envConfig)

type envConfig struct {
	prefix     string
	identifier string
	writer     io.Writer
	options    []Option
	overrides  map[string]string
}

// WithEnvPrefix overrides the environment variable prefix (default BEEPER_).
func WithEnvPrefix(prefix string) EnvOption {
	return func(cfg *envConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvIdentifier sets the identifier used when {prefix}IDENTIFIER is unset.
func WithEnvIdentifier(identifier string) EnvOption {
	return func(cfg *envConfig) {
		cfg.identifier = identifier
	}
}

// WithEnvWriter sets the destination "default" refers to, and the sole
// recipient when {prefix}OUTPUT is unset. Defaults to os.Stderr.
func WithEnvWriter(w io.Writer) EnvOption {
	return func(cfg *envConfig) {
		cfg.writer = w
	}
}

// WithEnvOptions seeds the beeper options. Environment values win.
func WithEnvOptions(opts ...Option) EnvOption {
	return func(cfg *envConfig) {
		cfg.options = append(cfg.options, opts...)
	}
}

// WithEnvOverride sets the value of {prefix}key as if it were in the
// environment, taking precedence over the real variable. Command line front
// ends use it to layer flags over the environment.
func WithEnvOverride(key, value string) EnvOption {
	return func(cfg *envConfig) {
		if cfg.overrides == nil {
			cfg.overrides = make(map[string]string)
		}
		cfg.overrides[strings.ToUpper(key)] = value
	}
}

// FromEnv creates the active beeper from environment variables and returns it
// together with a closer for any files it opened as recipients. The beeper
// never closes its recipients; call the closer after Destroy.
//
// Recognised variables are {prefix}IDENTIFIER, OUTPUT, WIDE, FORMATTED,
// NO_COLOR, WIDE_ENCODING, SLOT_LIMIT and THEMES. OUTPUT is a comma separated
// list of stdout, stderr, default or file paths; files are opened for
// appending. FORMATTED forces escape sequences on or off; when unset each
// output is formatted only if it is a terminal. WIDE_ENCODING is an IANA
// charset name. THEMES is the path of a TOML theme file.
//
// Nothing changes in the registry when FromEnv fails. Failures to open an
// output, read the theme file or parse a value are returned wrapped as they
// are and are not argument errors; Code is meaningful only for errors from
// the core operations.
func FromEnv(opts ...EnvOption) (*Beeper, io.Closer, error) {
	cfg := envConfig{prefix: "BEEPER_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	baseWriter := cfg.writer
	if baseWriter == nil {
		baseWriter = os.Stderr
	}
	identifier := cfg.identifier
	if identifier == "" {
		identifier = filepath.Base(os.Args[0])
	}
	prefix := cfg.prefix
	if value, ok := cfg.lookup("IDENTIFIER"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			identifier = parsed
		}
	}
	options := append([]Option(nil), cfg.options...)
	if value, ok := cfg.lookup("WIDE_ENCODING"); ok {
		enc, err := lookupEncoding(value)
		if err != nil {
			return nil, nil, err
		}
		options = append(options, WithWideEncoding(enc))
	}
	if value, ok := cfg.lookup("SLOT_LIMIT"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, nil, fmt.Errorf("parse %sSLOT_LIMIT: %w", prefix, err)
		}
		options = append(options, WithSlotLimit(n))
	}
	wide := false
	if value, ok := cfg.lookup("WIDE"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			wide = parsed
		}
	}
	var formatted *bool
	if value, ok := cfg.lookup("FORMATTED"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			formatted = &parsed
		}
	}
	if value, ok := cfg.lookup("NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok && parsed {
			off := false
			formatted = &off
		}
	}
	var themes []Theme
	if value, ok := cfg.lookup("THEMES"); ok {
		if path := strings.TrimSpace(value); path != "" {
			loaded, err := LoadThemes(path)
			if err != nil {
				return nil, nil, err
			}
			themes = loaded
		}
	}
	outputs := &openedOutputs{}
	writers := []io.Writer{baseWriter}
	if value, ok := cfg.lookup("OUTPUT"); ok && strings.TrimSpace(value) != "" {
		resolved, err := writersFromEnvOutput(value, baseWriter, outputs)
		if err != nil {
			_ = outputs.Close()
			return nil, nil, err
		}
		writers = resolved
	}

	b, err := newBeeper(identifier, options...)
	if err != nil {
		_ = outputs.Close()
		return nil, nil, err
	}
	for _, w := range writers {
		format := colorAllowed(w)
		if formatted != nil {
			format = *formatted
		}
		if err := b.AddRecipient(w, wide, format); err != nil {
			_ = outputs.Close()
			return nil, nil, err
		}
	}
	if err := b.ApplyThemes(themes); err != nil {
		_ = outputs.Close()
		return nil, nil, err
	}
	active = b
	return b, outputs, nil
}

func (cfg *envConfig) lookup(key string) (string, bool) {
	if value, ok := cfg.overrides[key]; ok {
		return value, true
	}
	return os.LookupEnv(cfg.prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

// LookupEncoding resolves an IANA charset name such as "UTF-16LE" or
// "ISO-8859-1" for WithWideEncoding.
func LookupEncoding(name string) (encoding.Encoding, error) {
	return lookupEncoding(name)
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	trimmed := strings.TrimSpace(name)
	enc, err := ianaindex.IANA.Encoding(trimmed)
	if err != nil {
		return nil, fmt.Errorf("wide encoding %q: %w", trimmed, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("wide encoding %q: unsupported", trimmed)
	}
	return enc, nil
}

func writersFromEnvOutput(value string, base io.Writer, outputs *openedOutputs) ([]io.Writer, error) {
	var writers []io.Writer
	for part := range strings.SplitSeq(value, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		switch strings.ToLower(trimmed) {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		case "default":
			writers = append(writers, base)
		default:
			f, err := outputs.open(trimmed)
			if err != nil {
				return nil, err
			}
			writers = append(writers, f)
		}
	}
	if len(writers) == 0 {
		writers = append(writers, base)
	}
	return writers, nil
}

// openedOutputs owns the files FromEnv opened on the caller's behalf.
type openedOutputs struct {
	files []*os.File
}

func (o *openedOutputs) open(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output %q: %w", path, err)
	}
	o.files = append(o.files, file)
	return file, nil
}

// Close closes every opened file once.
func (o *openedOutputs) Close() error {
	var errs []error
	for _, f := range o.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	o.files = nil
	return errors.Join(errs...)
}
