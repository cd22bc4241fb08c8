package services

// SupportCache memoizes, per concrete mime type string, whether any
// registered pattern matches it. Entries are write-once for the lifetime
// of one registry instance; the cache is discarded with the registry.
//
// The wildcard mime type "*" is cached like any other key. There is no
// eviction: the domain is a few dozen mime types in practice.
type SupportCache struct {
	known map[string]bool
}

// NewSupportCache creates an empty support cache.
func NewSupportCache() *SupportCache {
	return &SupportCache{
		known: make(map[string]bool),
	}
}

// IsSupported returns the cached answer for mimeType, or scans the entries
// in their current order, caches the result and returns it.
func (c *SupportCache) IsSupported(mimeType string, entries []*Entry) bool {
	if supported, ok := c.known[mimeType]; ok {
		return supported
	}

	supported := false
	for _, entry := range entries {
		if entry.Matches(mimeType) {
			supported = true
			break
		}
	}
	c.known[mimeType] = supported
	return supported
}
