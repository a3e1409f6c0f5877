package simulation

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Profile is an ordered sequence of non-negative daily weights describing how
// a batch's lifetime emission total is spread over its treatment duration.
//
// Two kinds of profile exist and must not be confused:
//
//   - Normalized profiles (sum == 1) redistribute a fixed, fully-known batch
//     total over the batch duration. All composting profiles are normalized.
//   - Release-fraction kernels give the exact fraction of a decay potential
//     released per day. Their sum over a finite horizon is deliberately less
//     than 1, leaving residual potential unreleased; renormalizing such a
//     kernel would inflate emissions. The landfill FOD kernel is of this kind.
type Profile []float64

// NewNormalizedProfile validates weights and scales them so they sum to 1.
func NewNormalizedProfile(weights []float64) (Profile, error) {
	sum := 0.0
	for _, w := range weights {
		if w < 0 {
			return nil, ErrNegativeProfileWeight
		}
		sum += w
	}
	if sum == 0 {
		return nil, ErrEmptyProfile
	}

	p := make(Profile, len(weights))
	for i, w := range weights {
		p[i] = w / sum
	}
	return p, nil
}

// mustNormalize builds the fixed package-level profiles. It panics on
// invalid weights, which can only happen on a broken constant table.
func mustNormalize(weights []float64) Profile {
	p, err := NewNormalizedProfile(weights)
	if err != nil {
		panic(err)
	}
	return p
}

// Sum returns the total weight of the profile.
func (p Profile) Sum() float64 {
	total := 0.0
	for _, w := range p {
		total += w
	}
	return total
}

// FODKernel returns the first-order-decay release kernel over days days for
// annual decay rate k. Entry d (0-indexed) is the fraction of one day's
// injected methane potential released on the (d+1)-th day after injection:
//
//	exp(-k*d/365) - exp(-k*(d+1)/365)
//
// The kernel is NOT normalized: its finite-horizon sum 1-exp(-k*days/365)
// stays below 1, correctly carrying unreleased potential past the horizon.
// Negative values from floating-point cancellation are clamped to zero.
func FODKernel(k float64, days int) Profile {
	kernel := make(Profile, days)
	for d := 0; d < days; d++ {
		v := math.Exp(-k*float64(d)/DaysPerYear) - math.Exp(-k*float64(d+1)/DaysPerYear)
		if v < 0 {
			v = 0
		}
		kernel[d] = v
	}
	return kernel
}

// fftKernelThreshold is the kernel length above which Convolve switches from
// the direct O(n*m) sum to the FFT path.
const fftKernelThreshold = 128

// Convolve computes the discrete convolution of input with kernel, truncated
// to n output samples. This is the redistribution primitive shared by every
// pathway: each day's entering batch independently follows the same future
// emission curve and overlapping batches sum per calendar day.
func Convolve(input []float64, kernel Profile, n int) []float64 {
	if len(kernel) > fftKernelThreshold {
		return convolveFFT(input, kernel, n)
	}
	return convolveDirect(input, kernel, n)
}

func convolveDirect(input []float64, kernel Profile, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		jMax := len(kernel)
		if i+1 < jMax {
			jMax = i + 1
		}
		acc := 0.0
		for j := 0; j < jMax; j++ {
			if i-j < len(input) {
				acc += input[i-j] * kernel[j]
			}
		}
		out[i] = acc
	}
	return out
}

func convolveFFT(input []float64, kernel Profile, n int) []float64 {
	size := nextPowerOfTwo(len(input) + len(kernel) - 1)

	a := make([]float64, size)
	copy(a, input)
	b := make([]float64, size)
	copy(b, kernel)

	fft := fourier.NewFFT(size)
	ca := fft.Coefficients(nil, a)
	cb := fft.Coefficients(nil, b)
	for i := range ca {
		ca[i] *= cb[i]
	}

	full := fft.Sequence(nil, ca)
	scale := 1 / float64(size)

	out := make([]float64, n)
	for i := range out {
		v := full[i] * scale
		// FFT round-off can push values that are analytically zero
		// slightly negative.
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}

func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// constantSeries returns a series of n copies of v, the input shape for a
// continuous daily waste stream.
func constantSeries(v float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}
