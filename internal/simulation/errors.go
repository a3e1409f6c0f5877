package simulation

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Parameter validation errors. All are rejected before any simulation work
// starts; the engine never silently clamps an out-of-domain input.
var (
	// ErrMoistureOutOfRange indicates a moisture fraction outside (0,1).
	// The exclusive bounds avoid division singularities in the moisture
	// correction terms.
	ErrMoistureOutOfRange = constError("moisture fraction must be in (0,1)")

	// ErrCarbonFractionOutOfRange indicates a degradable organic carbon
	// fraction outside (0,1).
	ErrCarbonFractionOutOfRange = constError("degradable carbon fraction must be in (0,1)")

	// ErrNegativeWaste indicates a negative daily waste mass. Zero is
	// permitted and degenerates to all-zero emission series.
	ErrNegativeWaste = constError("daily waste mass must not be negative")

	// ErrNonPositiveDecayRate indicates a decay rate <= 0 per year.
	ErrNonPositiveDecayRate = constError("decay rate must be positive")

	// ErrNonPositiveHorizon indicates a simulation horizon of zero or
	// fewer days.
	ErrNonPositiveHorizon = constError("simulation horizon must be positive")

	// ErrUnknownPathway indicates a pathway value outside the defined set.
	ErrUnknownPathway = constError("unknown treatment pathway")

	// ErrEmptyProfile indicates a profile with no positive weight, which
	// cannot redistribute a batch total.
	ErrEmptyProfile = constError("emission profile has no positive weight")

	// ErrNegativeProfileWeight indicates a profile weight below zero.
	ErrNegativeProfileWeight = constError("emission profile weights must be non-negative")
)
