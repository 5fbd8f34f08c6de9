// Package config stores named bar profiles and user preferences.
//
// Profiles live in a YAML file in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/segbar/profiles.yaml or $HOME/.config/segbar/profiles.yaml
//   - macOS: $HOME/.config/segbar/profiles.yaml
//   - Windows: %LOCALAPPDATA%\segbar\profiles.yaml
//
// A profile is a partial bar request. Fields left out of the file stay
// unset, so the corresponding mask bit is clear and the library default
// applies:
//
//	version: 1
//	profiles:
//	  office:
//	    segments: 30
//	    x: 0
//	    fg: "#00ff00"
//	preferences:
//	  backend: png
//	  screen_width: 2560
//	  screen_height: 1440
//
// A handful of built-in profiles is always available and never written to
// disk.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mask, attr := registry.GetProfile("top-left").Request()
//	bar, err := segbar.Init(mask, attr, backend)
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File writes are protected by a mutex and are atomic.
package config
