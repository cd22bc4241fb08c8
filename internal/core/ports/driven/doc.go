// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the registry to function:
//
//   - ConfigStore: Application configuration
//   - CapabilityFacts: Environment facts gating optional built-in providers
//
// # Optional Interfaces
//
// These can be absent - the registry degrades gracefully:
//
//   - PluginContext: Additional providers contributed by other modules.
//     An unset context means "no additional providers".
//   - ProviderResolver: Dependency lookup for plugin-contributed providers.
//   - Generator: Renders and caches previews. Without it, resolution
//     queries still work but generation fails.
//   - PreviewStore: Index of rendered previews for the local generator.
//
// Provider capabilities (AvailabilityChecker, Renderer) are likewise
// optional per provider and discovered by type assertion.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or provider package
package driven
