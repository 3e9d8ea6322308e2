package infoscript

// DefaultMaxCycles is the cycle budget of a single verification unless
// configured otherwise.
const DefaultMaxCycles uint64 = 1_000_000

// Config holds the settings a Verifier is created with.
type Config struct {
	// Variant is the deployed revision of the script to verify with.
	Variant *Variant

	// MaxCycles is the cycle budget of a single verification. Zero means no
	// limit.
	MaxCycles uint64
}

// NewConfig returns a Config verifying with DefaultVariant under
// DefaultMaxCycles.
func NewConfig() *Config {
	return &Config{
		Variant:   DefaultVariant,
		MaxCycles: DefaultMaxCycles,
	}
}
