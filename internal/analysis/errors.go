package analysis

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Analysis configuration errors.
var (
	// ErrNoSamples indicates a non-positive sample count.
	ErrNoSamples = constError("sample count must be positive")

	// ErrNoParameters indicates an analysis with no varied parameters.
	ErrNoParameters = constError("at least one varied parameter is required")

	// ErrUnknownParameter indicates a parameter name the simulation does
	// not expose.
	ErrUnknownParameter = constError("unknown simulation parameter")

	// ErrUnknownDistribution indicates an unsupported distribution kind.
	ErrUnknownDistribution = constError("unknown input distribution")

	// ErrInvalidBounds indicates a bound or distribution whose shape
	// values are inconsistent (min >= max, non-positive stddev, mode
	// outside [min,max]).
	ErrInvalidBounds = constError("invalid parameter bounds")
)
