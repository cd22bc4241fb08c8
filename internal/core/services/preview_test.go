package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previewlab/previewd/internal/adapters/driven/storage/memory"
	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
	"github.com/previewlab/previewd/internal/core/ports/driving"
)

// fakeCaps is a deterministic CapabilityFacts stub.
type fakeCaps struct {
	loaded  bool
	formats map[string]bool
	exec    bool
	paths   map[string]string
}

func (c *fakeCaps) GraphicsLoaded() bool { return c.loaded }

func (c *fakeCaps) GraphicsSupports(format string) bool { return c.loaded && c.formats[format] }

func (c *fakeCaps) ExecAllowed() bool { return c.exec }

func (c *fakeCaps) LookPath(binary string) (string, bool) {
	path, ok := c.paths[binary]
	return path, ok
}

// fullProvider probes per-file availability.
type fullProvider struct {
	id        domain.ProviderID
	available bool
}

func (p *fullProvider) ID() domain.ProviderID { return p.id }

func (p *fullProvider) IsAvailable(_ domain.FileInfo) bool { return p.available }

// legacyProvider has no availability probing.
type legacyProvider struct {
	id domain.ProviderID
}

func (p *legacyProvider) ID() domain.ProviderID { return p.id }

// reg builds an unconditional builtin registration producing the provider.
func reg(id domain.ProviderID, pattern string, provider driven.Provider) driven.BuiltinRegistration {
	return driven.BuiltinRegistration{
		ID:      id,
		Pattern: pattern,
		Gate: func(_ driven.CapabilityFacts, _ driven.ConfigStore) (driven.ProviderFactory, bool) {
			return func() (driven.Provider, error) {
				return provider, nil
			}, true
		},
	}
}

// failingReg builds a registration whose factory errors at materialisation.
func failingReg(id domain.ProviderID, pattern string) driven.BuiltinRegistration {
	return driven.BuiltinRegistration{
		ID:      id,
		Pattern: pattern,
		Gate: func(_ driven.CapabilityFacts, _ driven.ConfigStore) (driven.ProviderFactory, bool) {
			return func() (driven.Provider, error) {
				return nil, errors.New("constructor exploded")
			}, true
		},
	}
}

type fakePluginContext struct {
	entries []driven.PluginProvider
}

func (c *fakePluginContext) PreviewProviders() []driven.PluginProvider { return c.entries }

type fakeResolver struct {
	providers map[string]driven.Provider
}

func (r *fakeResolver) Resolve(id string) (driven.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, errors.New("unknown provider")
	}
	return p, nil
}

func pngFile() domain.FileInfo {
	return domain.FileInfo{
		ID:       "f1",
		Path:     "/tmp/pic.png",
		Name:     "pic.png",
		MimeType: "image/png",
		Size:     1024,
	}
}

func newService(t *testing.T, builtins []driven.BuiltinRegistration, opts ...Option) (*PreviewService, *memory.ConfigStore) {
	t.Helper()
	cfg := memory.NewConfigStore()
	svc := NewPreviewService(cfg, &fakeCaps{}, builtins, opts...)
	return svc, cfg
}

func TestPreviewService_Providers_EmptyWhenDisabled(t *testing.T) {
	svc, cfg := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/png`, &legacyProvider{id: domain.ProviderPNG}),
	})
	require.NoError(t, cfg.Set("enable_previews", false))

	table, err := svc.Providers()

	require.NoError(t, err)
	assert.Empty(t, table)
	assert.False(t, svc.HasProviders())
}

func TestPreviewService_Providers_SortedBySpecificity(t *testing.T) {
	svc, _ := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/png`, &legacyProvider{id: domain.ProviderPNG}),
		reg(domain.ProviderMarkdown, `text/(x-)?markdown`, &fullProvider{id: domain.ProviderMarkdown, available: true}),
		reg(domain.ProviderTXT, `text/plain`, &fullProvider{id: domain.ProviderTXT, available: true}),
	})

	table, err := svc.Providers()

	require.NoError(t, err)
	require.Len(t, table, 3)
	assert.Equal(t, `text/(x-)?markdown`, table[0].Pattern)
	assert.Equal(t, `text/plain`, table[1].Pattern)
	assert.Equal(t, `image/png`, table[2].Pattern)
}

func TestPreviewService_Providers_UnknownConfiguredProvider(t *testing.T) {
	svc, cfg := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/png`, &legacyProvider{id: domain.ProviderPNG}),
	})
	require.NoError(t, cfg.Set("enabledPreviewProviders", []string{"PNG", "Bogus"}))

	_, err := svc.Providers()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestPreviewService_Providers_ConfigDisablesProvider(t *testing.T) {
	// The TXT gate is satisfied; configuration alone removes it.
	svc, cfg := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/png`, &legacyProvider{id: domain.ProviderPNG}),
		reg(domain.ProviderTXT, `text/plain`, &fullProvider{id: domain.ProviderTXT, available: true}),
	})
	require.NoError(t, cfg.Set("enabledPreviewProviders", []string{"PNG"}))

	table, err := svc.Providers()

	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, `image/png`, table[0].Pattern)
	assert.False(t, svc.IsMimeSupported("text/plain"))
}

func TestPreviewService_Providers_ImageMarkerExpansion(t *testing.T) {
	builtins := []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/png`, &legacyProvider{id: domain.ProviderPNG}),
		reg(domain.ProviderJPEG, `image/jpe?g`, &legacyProvider{id: domain.ProviderJPEG}),
		reg(domain.ProviderTXT, `text/plain`, &fullProvider{id: domain.ProviderTXT, available: true}),
	}
	svc, cfg := newService(t, builtins)
	require.NoError(t, cfg.Set("enabledPreviewProviders", []string{"Image"}))

	table, err := svc.Providers()

	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.True(t, svc.IsMimeSupported("image/png"))
	assert.True(t, svc.IsMimeSupported("image/jpeg"))
	assert.False(t, svc.IsMimeSupported("text/plain"))
}

func TestPreviewService_IsMimeSupported_Memoized(t *testing.T) {
	svc, _ := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/png`, &legacyProvider{id: domain.ProviderPNG}),
	})

	require.True(t, svc.IsMimeSupported("image/png"))

	// Same answer from the cache, no re-scan of the table.
	assert.True(t, svc.IsMimeSupported("image/png"))
	assert.True(t, svc.cache.IsSupported("image/png", nil))
}

func TestPreviewService_IsMimeSupported_DisabledNotCached(t *testing.T) {
	svc, cfg := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/png`, &legacyProvider{id: domain.ProviderPNG}),
	})

	require.NoError(t, cfg.Set("enable_previews", false))
	assert.False(t, svc.IsMimeSupported("image/png"))

	// Re-enabling must not be shadowed by a cached false.
	require.NoError(t, cfg.Set("enable_previews", true))
	assert.True(t, svc.IsMimeSupported("image/png"))
}

func TestPreviewService_IsAvailable_DisabledFlag(t *testing.T) {
	svc, cfg := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderTXT, `text/plain`, &fullProvider{id: domain.ProviderTXT, available: true}),
	})
	require.NoError(t, cfg.Set("enable_previews", false))

	file := pngFile()
	file.MimeType = "text/plain"
	assert.False(t, svc.IsAvailable(file))
}

func TestPreviewService_IsAvailable_MountDisabled(t *testing.T) {
	svc, _ := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderTXT, `text/plain`, &fullProvider{id: domain.ProviderTXT, available: true}),
	})

	file := pngFile()
	file.MimeType = "text/plain"
	file.Mount.PreviewsDisabled = true
	assert.False(t, svc.IsAvailable(file))
}

func TestPreviewService_IsAvailable_LegacyProvidersSkipped(t *testing.T) {
	// PNG supported, but only by a legacy provider: support check answers
	// true while availability probing finds nobody to ask.
	svc, _ := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/png`, &legacyProvider{id: domain.ProviderPNG}),
	})

	assert.True(t, svc.IsMimeSupported("image/png"))
	assert.False(t, svc.IsAvailable(pngFile()))
}

func TestPreviewService_IsAvailable_FullProviderAlongsideLegacy(t *testing.T) {
	svc, _ := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/png`, &legacyProvider{id: domain.ProviderPNG}),
		reg(domain.ProviderPNG, `image/png`, &fullProvider{id: domain.ProviderPNG, available: true}),
	})

	assert.True(t, svc.IsAvailable(pngFile()))
}

func TestPreviewService_IsAvailable_FactoryFailureContinues(t *testing.T) {
	svc, _ := newService(t, []driven.BuiltinRegistration{
		failingReg(domain.ProviderPNG, `image/png`),
		reg(domain.ProviderPNG, `image/png`, &fullProvider{id: domain.ProviderPNG, available: true}),
	})

	assert.True(t, svc.IsAvailable(pngFile()))
}

func TestPreviewService_IsAvailable_NoProviderReportsAvailability(t *testing.T) {
	svc, _ := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/png`, &fullProvider{id: domain.ProviderPNG, available: false}),
	})

	assert.False(t, svc.IsAvailable(pngFile()))
}

func TestPreviewService_PluginProviders_NoDuplicates(t *testing.T) {
	pluginCtx := &fakePluginContext{entries: []driven.PluginProvider{
		{Pattern: `application/x-custom`, ProviderID: "custom"},
	}}
	resolver := &fakeResolver{providers: map[string]driven.Provider{
		"custom": &fullProvider{id: "custom", available: true},
	}}
	source := func() (driven.PluginContext, bool) { return pluginCtx, true }

	svc, _ := newService(t, nil, WithPluginContext(source, resolver))

	first, err := svc.Providers()
	require.NoError(t, err)
	second, err := svc.Providers()
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Len(t, second[0].Factories, 1)
}

func TestPreviewService_PluginProviders_VisibleToHasProviders(t *testing.T) {
	pluginCtx := &fakePluginContext{entries: []driven.PluginProvider{
		{Pattern: `application/x-custom`, ProviderID: "custom"},
	}}
	resolver := &fakeResolver{providers: map[string]driven.Provider{
		"custom": &fullProvider{id: "custom", available: true},
	}}
	source := func() (driven.PluginContext, bool) { return pluginCtx, true }

	svc, _ := newService(t, nil, WithPluginContext(source, resolver))

	assert.True(t, svc.HasProviders())
	assert.True(t, svc.IsMimeSupported("application/x-custom"))
}

func TestPreviewService_PluginContext_NotYetInitialised(t *testing.T) {
	source := func() (driven.PluginContext, bool) { return nil, false }
	svc, _ := newService(t, nil, WithPluginContext(source, &fakeResolver{}))

	// Silent no-op, not an error.
	table, err := svc.Providers()
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestPreviewService_PluginProvider_ResolveFailureSkipped(t *testing.T) {
	pluginCtx := &fakePluginContext{entries: []driven.PluginProvider{
		{Pattern: `image/png`, ProviderID: "missing"},
	}}
	source := func() (driven.PluginContext, bool) { return pluginCtx, true }

	svc, _ := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/png`, &fullProvider{id: domain.ProviderPNG, available: true}),
	}, WithPluginContext(source, &fakeResolver{}))

	// The misconfigured plugin factory yields "no provider"; the built-in
	// candidate still wins.
	assert.True(t, svc.IsAvailable(pngFile()))
}

// countingGenerator records construction and calls.
type countingGenerator struct {
	calls int
}

func (g *countingGenerator) GetPreview(_ context.Context, file domain.FileInfo, spec domain.PreviewSpec, _ string) (*domain.Preview, error) {
	g.calls++
	return &domain.Preview{FileID: file.ID, Spec: spec}, nil
}

func (g *countingGenerator) GeneratePreviews(_ context.Context, file domain.FileInfo, specs []domain.PreviewSpec, _ string) (*domain.Preview, error) {
	g.calls++
	return &domain.Preview{FileID: file.ID, Spec: specs[0]}, nil
}

func TestPreviewService_Generator_ConstructedOnce(t *testing.T) {
	constructed := 0
	gen := &countingGenerator{}
	svc, _ := newService(t, nil, WithGeneratorFactory(func(source driving.ProviderSource) driven.Generator {
		constructed++
		require.NotNil(t, source)
		return gen
	}))

	_, err := svc.GetPreview(context.Background(), pngFile(), domain.PreviewSpec{Width: 10, Height: 10}, "")
	require.NoError(t, err)
	_, err = svc.GeneratePreviews(context.Background(), pngFile(), []domain.PreviewSpec{{Width: 10, Height: 10}}, "")
	require.NoError(t, err)

	assert.Equal(t, 1, constructed)
	assert.Equal(t, 2, gen.calls)
}

func TestPreviewService_Generator_Unwired(t *testing.T) {
	svc, _ := newService(t, nil)

	_, err := svc.GetPreview(context.Background(), pngFile(), domain.PreviewSpec{Width: 10, Height: 10}, "")

	assert.ErrorIs(t, err, domain.ErrGeneratorUnavailable)
}

func TestPreviewService_ProvidersFor_TableOrder(t *testing.T) {
	svc, _ := newService(t, []driven.BuiltinRegistration{
		reg(domain.ProviderPNG, `image/.*`, &legacyProvider{id: domain.ProviderPNG}),
		reg(domain.ProviderPNG, `image/png`, &fullProvider{id: domain.ProviderPNG, available: true}),
	})

	factories := svc.ProvidersFor("image/png")

	// Both patterns match; the more specific pattern's factory comes first.
	require.Len(t, factories, 2)
	p, err := factories[0]()
	require.NoError(t, err)
	_, isFull := p.(driven.AvailabilityChecker)
	assert.True(t, isFull)
}
