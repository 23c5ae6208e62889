// Package config provides simple, local-first configuration for watchhound.
//
// A single JSON file under the user's config directory holds the few knobs
// the tool has:
//
//	{
//	  "git_bin": "git",
//	  "debounce_seconds": 5,
//	  "ignore_dirs": ["node_modules", "vendor", "dist"],
//	  "log_file": ""
//	}
//
// Missing file means defaults; the file is created on first save. Command
// line flags override whatever the file says.
package config
