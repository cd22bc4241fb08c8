package driven

// CapabilityFacts exposes the runtime environment facts that gate optional
// built-in providers. The core never inspects the environment itself; an
// adapter owns all binary discovery and exec policy, keeping the registry
// deterministic and testable.
type CapabilityFacts interface {
	// GraphicsLoaded reports whether the graphics/imaging capability is
	// available at all.
	GraphicsLoaded() bool

	// GraphicsSupports reports whether the graphics capability can handle
	// the given format token (e.g. "SVG", "TIFF", "PDF").
	GraphicsSupports(format string) bool

	// ExecAllowed reports whether spawning external commands is permitted.
	ExecAllowed() bool

	// LookPath discovers an executable on the search path. Returns the
	// resolved path and true, or "" and false if not found. Discovery may
	// block; implementations cache the result.
	LookPath(binary string) (string, bool)
}
