// Package domain defines the core business entities for previewd.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FileInfo: A file for which a preview may be resolved
//   - Mount: The storage mount a file lives on
//   - ProviderID: Identifier of a preview provider
//   - PreviewSpec: Requested dimensions and fit mode for a preview
//   - Preview: A rendered preview handle
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
package domain
