// Package config loads hexstorm's settings.
//
// # Architecture
//
// Settings are assembled from layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← HEXSTORM_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/hexstorm/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment sources
//   - layer: priority ordering and merging of sources
//   - watcher: change notification for the config file
//
// # Basic Usage
//
//	s, err := config.Load(config.Options{Path: cfgFlag})
//	if err != nil {
//	    return err
//	}
//	if err := s.Validate(); err != nil {
//	    return err
//	}
//	g, err := s.Geometry()
//
// # Configuration Files
//
// TOML and YAML files are accepted; the extension picks the parser:
//
//	# ~/.config/hexstorm/config.toml
//	[viewer]
//	bytesPerGroup = 4
//	groupsPerRow = 4
//	switchMode = "left-edge"
//
//	[ui.colors]
//	header = "#FFAA00"
//
//	[keys]
//	"app.quit" = ["q", "Ctrl+Q"]
//
// # Error Handling
//
//   - ErrFileNotFound: an explicit --config path doesn't exist
//   - ErrTypeMismatch: a value has the wrong type for its setting
//   - ErrValidationFailed: matched by every ValidationError
//   - ParseError: a config file is not valid TOML or YAML
package config
