// Package driving defines the interfaces through which the outside world
// drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI adapter (and any future API surface) depends on these interfaces;
// core services implement them.
//
// # Import Rules
//
//   - Can Import: domain and driven ports only
//   - Cannot Import: services or any adapter package
package driving
