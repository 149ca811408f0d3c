// Package layer stacks hexstorm configuration sources by priority.
//
// Built-in defaults sit at the bottom, then the config file, then
// environment variables, and command-line flags on top. Higher layers
// override lower ones path by path.
package layer

import (
	"github.com/dshills/hexstorm/internal/config/loader"
)

// Layer represents a single configuration layer.
type Layer struct {
	// Name identifies the layer (e.g., "file", "default").
	Name string

	// Priority determines merge order (higher overrides lower).
	Priority int

	// Source indicates where this layer was loaded from.
	Source Source

	// Path is the file path (if loaded from file).
	Path string

	// Data holds the configuration values as a nested map.
	Data map[string]any
}

// NewLayer creates a new configuration layer with the source's default
// name and priority.
func NewLayer(source Source, data map[string]any) *Layer {
	if data == nil {
		data = make(map[string]any)
	}
	return &Layer{
		Name:     source.String(),
		Source:   source,
		Priority: source.Priority(),
		Data:     data,
	}
}

// NewFileLayer creates a layer for a configuration file.
func NewFileLayer(path string, data map[string]any) *Layer {
	l := NewLayer(SourceFile, data)
	l.Path = path
	return l
}

// Clone creates a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	return &Layer{
		Name:     l.Name,
		Priority: l.Priority,
		Source:   l.Source,
		Path:     l.Path,
		Data:     loader.Clone(l.Data),
	}
}

// Describe names the layer for error messages, including the file path
// for file layers.
func (l *Layer) Describe() string {
	if l.Path != "" {
		return l.Name + " " + l.Path
	}
	return l.Name
}

// Source indicates where a configuration layer came from.
type Source uint8

const (
	// SourceBuiltin represents built-in default configuration.
	SourceBuiltin Source = iota
	// SourceFile represents the user's config file.
	SourceFile
	// SourceEnv represents HEXSTORM_* environment variables.
	SourceEnv
	// SourceArgs represents command-line arguments.
	SourceArgs
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "default"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "environment"
	case SourceArgs:
		return "arguments"
	default:
		return "unknown"
	}
}

// Priority returns the default merge priority of the source.
func (s Source) Priority() int {
	return int(s) * 100
}
