package services

import (
	"context"

	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
	"github.com/previewlab/previewd/internal/core/ports/driving"
	"github.com/previewlab/previewd/internal/logger"
)

// Ensure PreviewService implements the interface.
var _ driving.PreviewService = (*PreviewService)(nil)

// Config keys consulted by the preview service.
const (
	keyEnablePreviews   = "enable_previews"
	keyEnabledProviders = "enabledPreviewProviders"
)

// GeneratorFactory builds the generator lazily, wired to this registry so
// generation sees identical provider availability as upstream checks.
type GeneratorFactory func(source driving.ProviderSource) driven.Generator

// Option configures a PreviewService.
type Option func(*PreviewService)

// WithPluginContext wires the external plugin registration context and the
// dependency resolver for plugin-contributed providers.
func WithPluginContext(source driven.PluginContextSource, resolver driven.ProviderResolver) Option {
	return func(s *PreviewService) {
		s.external = newExternalRegistrar(source, resolver)
	}
}

// WithGeneratorFactory wires the generator used for preview generation.
// The generator is constructed at most once, on first use.
func WithGeneratorFactory(factory GeneratorFactory) Option {
	return func(s *PreviewService) {
		s.generatorFactory = factory
	}
}

// PreviewService is the resolution engine: it populates the pattern table
// from built-in and plugin-contributed providers, answers support and
// availability queries with memoization, and forwards generation to the
// generator.
//
// One instance serves one request scope; its caches live and die with it.
// It is not safe for concurrent use.
type PreviewService struct {
	config driven.ConfigStore

	table    *PatternTable
	cache    *SupportCache
	core     *coreRegistrar
	external *externalRegistrar

	generatorFactory GeneratorFactory
	generator        driven.Generator
}

// NewPreviewService creates a preview service over the given configuration,
// capability facts and built-in provider registrations.
func NewPreviewService(cfg driven.ConfigStore, caps driven.CapabilityFacts, builtins []driven.BuiltinRegistration, opts ...Option) *PreviewService {
	s := &PreviewService{
		config: cfg,
		table:  NewPatternTable(),
		cache:  NewSupportCache(),
		core: &coreRegistrar{
			config:   cfg,
			caps:     caps,
			builtins: builtins,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// enabled reports the global preview feature flag. Defaults to true when
// the key is unset.
func (s *PreviewService) enabled() bool {
	val, ok := s.config.Get(keyEnablePreviews)
	if !ok {
		return true
	}
	enabled, ok := val.(bool)
	if !ok {
		return true
	}
	return enabled
}

// ensureRegistered populates the table: built-ins once per lifetime,
// plugin contributions on every call.
func (s *PreviewService) ensureRegistered() error {
	if err := s.core.registerAll(s.table); err != nil {
		return err
	}
	if s.external != nil {
		s.external.registerAll(s.table)
	}
	return nil
}

// Providers returns the full provider table, longest pattern first.
// Empty when previews are disabled. Configuration errors surface.
func (s *PreviewService) Providers() ([]driving.PatternProviders, error) {
	if !s.enabled() {
		return nil, nil
	}
	if err := s.ensureRegistered(); err != nil {
		return nil, err
	}

	entries := s.table.Sorted()
	result := make([]driving.PatternProviders, 0, len(entries))
	for _, entry := range entries {
		result = append(result, driving.PatternProviders{
			Pattern:   entry.Pattern(),
			Factories: entry.Factories(),
		})
	}
	return result, nil
}

// HasProviders reports whether any provider is registered, built-in or
// plugin-contributed.
func (s *PreviewService) HasProviders() bool {
	if !s.enabled() {
		return false
	}
	if err := s.ensureRegistered(); err != nil {
		logger.Warn("provider registration failed: %v", err)
		return false
	}
	return s.table.Len() > 0
}

// IsMimeSupported reports whether any registered pattern matches the mime
// type. The answer is memoized per mime type for this instance's lifetime.
// While previews are disabled it returns false without caching, so a later
// enable is not shadowed by a stale entry.
func (s *PreviewService) IsMimeSupported(mimeType string) bool {
	if !s.enabled() {
		return false
	}
	if err := s.ensureRegistered(); err != nil {
		logger.Warn("provider registration failed: %v", err)
		return false
	}
	return s.cache.IsSupported(mimeType, s.table.Sorted())
}

// IsAvailable reports whether some provider can produce a preview for this
// concrete file. Matching patterns are tried longest first; within a
// pattern, factories in registration order. The first provider reporting
// availability wins. Legacy providers without per-file probing are skipped,
// and a factory failure downgrades to trying the next candidate.
func (s *PreviewService) IsAvailable(file domain.FileInfo) bool {
	if !s.enabled() {
		return false
	}
	if !s.IsMimeSupported(file.MimeType) {
		return false
	}
	if file.Mount.PreviewsDisabled {
		return false
	}

	for _, entry := range s.table.Matching(file.MimeType) {
		for _, factory := range entry.Factories() {
			provider, err := factory()
			if err != nil {
				logger.Debug("provider for %q unavailable: %v", entry.Pattern(), err)
				continue
			}
			checker, ok := provider.(driven.AvailabilityChecker)
			if !ok {
				// Legacy provider: structurally compatible but never
				// consulted for fine-grained availability.
				continue
			}
			if checker.IsAvailable(file) {
				return true
			}
		}
	}
	return false
}

// ProvidersFor returns the factories of all patterns matching the mime
// type, longest pattern first.
func (s *PreviewService) ProvidersFor(mimeType string) []driven.ProviderFactory {
	if !s.enabled() {
		return nil
	}
	if err := s.ensureRegistered(); err != nil {
		logger.Warn("provider registration failed: %v", err)
		return nil
	}

	var factories []driven.ProviderFactory
	for _, entry := range s.table.Matching(mimeType) {
		factories = append(factories, entry.Factories()...)
	}
	return factories
}

// GetPreview delegates to the generator.
func (s *PreviewService) GetPreview(ctx context.Context, file domain.FileInfo, spec domain.PreviewSpec, mimeOverride string) (*domain.Preview, error) {
	gen, err := s.getGenerator()
	if err != nil {
		return nil, err
	}
	return gen.GetPreview(ctx, file, spec, mimeOverride)
}

// GeneratePreviews delegates to the generator and returns the largest
// rendition.
func (s *PreviewService) GeneratePreviews(ctx context.Context, file domain.FileInfo, specs []domain.PreviewSpec, mimeOverride string) (*domain.Preview, error) {
	gen, err := s.getGenerator()
	if err != nil {
		return nil, err
	}
	return gen.GeneratePreviews(ctx, file, specs, mimeOverride)
}

// getGenerator constructs the generator exactly once, wired to this same
// registry instance.
func (s *PreviewService) getGenerator() (driven.Generator, error) {
	if s.generator != nil {
		return s.generator, nil
	}
	if s.generatorFactory == nil {
		return nil, domain.ErrGeneratorUnavailable
	}
	gen := s.generatorFactory(s)
	if gen == nil {
		return nil, domain.ErrGeneratorUnavailable
	}
	s.generator = gen
	return s.generator, nil
}
