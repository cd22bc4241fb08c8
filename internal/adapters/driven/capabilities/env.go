// Package capabilities provides the environment-derived capability facts
// consumed by the core registrar. All binary discovery and exec policy
// lives here so the core stays deterministic.
package capabilities

import (
	"os/exec"
	"sync"

	"github.com/previewlab/previewd/internal/core/ports/driven"
)

// Ensure Env implements the interface.
var _ driven.CapabilityFacts = (*Env)(nil)

// Env reports capability facts about the running environment.
// PATH lookups block on first use and the result is cached; subsequent
// calls reuse the cached decision.
type Env struct {
	loaded      bool
	formats     map[string]bool
	execAllowed bool
	lookPath    func(string) (string, error)

	mu    sync.Mutex
	paths map[string]string
}

// Option configures an Env.
type Option func(*Env)

// WithGraphicsFormats declares the graphics capability present with the
// given supported format tokens.
func WithGraphicsFormats(formats ...string) Option {
	return func(e *Env) {
		e.loaded = true
		for _, f := range formats {
			e.formats[f] = true
		}
	}
}

// WithExecAllowed sets whether external commands may be spawned.
func WithExecAllowed(allowed bool) Option {
	return func(e *Env) {
		e.execAllowed = allowed
	}
}

// WithLookPath replaces the PATH lookup function. Useful for testing.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(e *Env) {
		e.lookPath = fn
	}
}

// NewEnv creates environment capability facts. Without options, no
// graphics capability is present and exec is allowed.
func NewEnv(opts ...Option) *Env {
	e := &Env{
		formats:     make(map[string]bool),
		execAllowed: true,
		lookPath:    exec.LookPath,
		paths:       make(map[string]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GraphicsLoaded reports whether the graphics capability is available.
func (e *Env) GraphicsLoaded() bool {
	return e.loaded
}

// GraphicsSupports reports whether the graphics capability handles the
// format token.
func (e *Env) GraphicsSupports(format string) bool {
	return e.loaded && e.formats[format]
}

// ExecAllowed reports whether spawning external commands is permitted.
func (e *Env) ExecAllowed() bool {
	return e.execAllowed
}

// LookPath discovers an executable on the search path, caching the result.
// An absent binary is cached too, so repeated probes stay cheap.
func (e *Env) LookPath(binary string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if path, ok := e.paths[binary]; ok {
		return path, path != ""
	}

	path, err := e.lookPath(binary)
	if err != nil {
		path = ""
	}
	e.paths[binary] = path
	return path, path != ""
}
