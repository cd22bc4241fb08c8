// Package file provides the file-based configuration adapter.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage with optional
//     fsnotify-driven reload on file changes
package file
