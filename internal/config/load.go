package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/hexstorm/internal/config/layer"
	"github.com/dshills/hexstorm/internal/config/loader"
)

// Options controls where Load looks for settings.
type Options struct {
	// Path is an explicit config file. It must exist.
	Path string

	// ConfigDir is searched for config.toml, config.yaml and config.yml
	// when Path is empty. Defaults to $XDG_CONFIG_HOME/hexstorm.
	ConfigDir string

	// FS is the file system to read from. Defaults to the OS.
	FS loader.FileSystem

	// Environ replaces os.Environ as the environment source.
	Environ []string

	// EnvPrefix defaults to HEXSTORM_.
	EnvPrefix string

	// Overrides are dotted setting paths set from the command line.
	Overrides map[string]any
}

// Defaults returns the built-in settings as a configuration map.
func Defaults() map[string]any {
	return map[string]any{
		"viewer": map[string]any{
			"bytesPerGroup": int64(8),
			"groupsPerRow":  int64(2),
			"rows":          int64(10),
			"switchMode":    "keep",
			"placeholder":   ".",
		},
		"ui": map[string]any{
			"backend":       "tcell",
			"status":        true,
			"highlightTwin": true,
			"colors":        map[string]any{},
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
	}
}

// DefaultConfigDir returns the directory searched for a config file.
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hexstorm")
}

// Load merges defaults, the config file, the environment and overrides,
// and decodes the result. The returned settings are not yet validated.
func Load(opts Options) (*Settings, error) {
	if opts.FS == nil {
		opts.FS = loader.DefaultFS()
	}
	if opts.EnvPrefix == "" {
		opts.EnvPrefix = loader.DefaultEnvPrefix
	}

	layers := layer.NewManager()
	layers.AddLayer(layer.NewLayer(layer.SourceBuiltin, Defaults()))

	path, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		fl, err := loader.ForPath(opts.FS, path)
		if err != nil {
			return nil, err
		}
		data, err := fl.Load()
		if err != nil {
			return nil, err
		}
		layers.AddLayer(layer.NewFileLayer(path, data))
	}

	env := loader.NewEnvLoader(opts.EnvPrefix)
	if opts.Environ != nil {
		env.WithEnviron(opts.Environ)
	}
	envData, err := env.Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	layers.AddLayer(layer.NewLayer(layer.SourceEnv, envData))

	if len(opts.Overrides) > 0 {
		args := make(map[string]any)
		for p, v := range opts.Overrides {
			loader.SetByPath(args, p, v)
		}
		layers.AddLayer(layer.NewLayer(layer.SourceArgs, args))
	}

	s, err := decode(layers.Merge())
	if err != nil {
		return nil, err
	}
	s.ConfigFile = path
	s.sources = layers.WhichLayer
	return s, nil
}

// findConfigFile returns the file Load should read, or "" for none.
func findConfigFile(opts Options) (string, error) {
	if opts.Path != "" {
		if _, err := opts.FS.Stat(opts.Path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrFileNotFound, opts.Path)
			}
			return "", fmt.Errorf("config file %s: %w", opts.Path, err)
		}
		return opts.Path, nil
	}

	dir := opts.ConfigDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	if dir == "" {
		return "", nil
	}
	for _, ext := range loader.Extensions {
		candidate := filepath.Join(dir, "config"+ext)
		if _, err := opts.FS.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// decode converts the merged map into Settings by way of TOML, so field
// names and numeric ranges are checked by the same decoder the file
// loader uses. Unknown settings become warnings.
func decode(merged map[string]any) (*Settings, error) {
	normalizeKeys(merged)

	data, err := toml.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}

	s := &Settings{}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	err = dec.Decode(s)

	var missing *toml.StrictMissingError
	switch {
	case err == nil:
		return s, nil
	case errors.As(err, &missing):
		s = &Settings{Warnings: unknownSettings(missing)}
		if err := toml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
}

// normalizeKeys lets a single key spec stand in for a one-element list.
func normalizeKeys(merged map[string]any) {
	keys, ok := merged["keys"].(map[string]any)
	if !ok {
		return
	}
	for action, v := range keys {
		if spec, ok := v.(string); ok {
			keys[action] = []any{spec}
		}
	}
}

func unknownSettings(missing *toml.StrictMissingError) []string {
	out := make([]string, 0, len(missing.Errors))
	for _, e := range missing.Errors {
		out = append(out, "unknown setting "+strings.Join(e.Key(), "."))
	}
	sort.Strings(out)
	return out
}
