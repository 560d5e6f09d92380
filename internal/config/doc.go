// Package config provides user configuration management for tvremote.
//
// Preferences live in a YAML file. Every field is optional: a missing file,
// or a missing key, keeps the built-in default. Command-line flags override
// file values.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/tvremote/config.yaml or $HOME/.config/tvremote/config.yaml
//   - macOS: $HOME/.config/tvremote/config.yaml
//   - Windows: %LOCALAPPDATA%\tvremote\config.yaml
//
// # Example
//
//	version: 1
//	discovery:
//	  backend: ssdp
//	  search_window: 1s
//	lookup:
//	  timeout: 5s
//	logging:
//	  level: debug
//
// # Thread Safety
//
// Save is serialized by a package mutex and writes atomically through a
// temporary file and rename.
package config
