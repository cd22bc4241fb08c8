package domain

// WildcardMimeType queries whether anything is supported at all. It is
// matched against patterns like any other mime type string.
const WildcardMimeType = "*"

// Mount describes the storage mount a file lives on. Mount policy can
// disable previews for everything below the mount point.
type Mount struct {
	// ID identifies the mount (e.g. a mount point path).
	ID string

	// PreviewsDisabled turns previews off for all files on this mount.
	// The zero value keeps previews enabled.
	PreviewsDisabled bool
}

// FileInfo identifies a concrete file for preview resolution.
type FileInfo struct {
	// ID is a stable identifier for the file, used as the cache key for
	// rendered previews.
	ID string

	// Path is the file's location on disk.
	Path string

	// Name is the file's base name.
	Name string

	// MimeType is the detected media type (e.g. "image/png").
	MimeType string

	// Size is the file size in bytes.
	Size int64

	// Mount is the storage mount holding the file.
	Mount Mount
}
