package hirschberg

// Options configures an Iterator. Note that the zero-value Options has
// ZeroScratch false; callers wanting the documented defaults (byte mode,
// no transposition, scratch clearing enabled, Similarity metric) should
// start from DefaultOptions rather than an Options{} literal.
type Options struct {
	// UTF8 interprets both strings as UTF-8 at code-point granularity.
	// Default false.
	UTF8 bool

	// AllowTranspose enables 2x2-atomic and border-transpose logic so a
	// Damerau-style adjacent swap is never split across two atoms.
	// Default false.
	AllowTranspose bool

	// ZeroScratch clears the scratch rows between subproblems. Disable
	// only when the callback is known to overwrite every cell it uses;
	// the driver trusts the callback's used count either way. Default
	// true.
	ZeroScratch bool

	// ByteEqual is the byte-mode character equality used by the
	// transposition predicates. Defaults to DefaultByteEqual
	// (ASCII case-insensitive) when nil; pass CaseSensitiveByteEqual to
	// opt into exact comparison.
	ByteEqual ByteEqual

	// CodepointEqual is the UTF-8-mode character equality used by the
	// transposition predicates. Defaults to DefaultCodepointEqual
	// (Unicode simple case folding) when nil; pass
	// CaseSensitiveCodepointEqual to opt into exact comparison.
	CodepointEqual CodepointEqual

	// Metric selects Similarity (maximize) or Distance (minimize)
	// scoring. Default Similarity.
	Metric Metric
}

// DefaultOptions returns the documented defaults: byte mode, no
// transposition, scratch clearing enabled, case-insensitive equality,
// Similarity metric.
func DefaultOptions() Options {
	return Options{
		ZeroScratch: true,
		Metric:      Similarity,
	}
}

func (o Options) byteEqual() ByteEqual {
	if o.ByteEqual != nil {
		return o.ByteEqual
	}
	return DefaultByteEqual
}

func (o Options) codepointEqual() CodepointEqual {
	if o.CodepointEqual != nil {
		return o.CodepointEqual
	}
	return DefaultCodepointEqual
}
