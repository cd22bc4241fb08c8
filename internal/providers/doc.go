// Package providers contains the built-in preview providers and their
// registration table.
//
// Each provider is a small capability object. Availability probing and
// rendering are optional capabilities; basic bitmap providers are legacy
// providers without per-file probing, while capability-gated providers
// (graphics formats, office documents, video) probe the file and the
// environment handles bound into them at registration time.
package providers
