package apt

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// DefaultVersion is the apt.dat spec version assumed when the text
	// carries no preamble (e.g. a single-airport snippet).
	DefaultVersion int

	// Strict promotes malformed-input warnings to errors: the first
	// orphan line, short header, or missing terminator aborts the parse.
	Strict bool
}

// DefaultParseOptions returns the default parsing options: assume spec
// version 1100, collect warnings rather than fail.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		DefaultVersion: 1100,
		Strict:         false,
	}
}
