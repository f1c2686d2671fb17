// Package transform implements the amplitude/frequency transform at the core
// of the resonant engine: modulation = (A/255)·π, scaling = 406.4/X.
package transform

// #region imports
import (
	"errors"
	"fmt"
	"math"
)

// #endregion imports

// #region errors

// ErrInvalidArgument reports an input outside the transform's numeric domain.
var ErrInvalidArgument = errors.New("invalid argument")

// #endregion errors

// #region calculate

// Calculate evaluates the transform for a single amplitude/frequency pair.
// Amplitude is clamped to MaxAmplitude before computing.
func Calculate(amplitude, frequency float64) (Output, error) {
	if frequency <= 0 {
		return Output{}, fmt.Errorf("%w: frequency must be positive, got %g", ErrInvalidArgument, frequency)
	}
	if amplitude < 0 {
		return Output{}, fmt.Errorf("%w: amplitude must be non-negative, got %g", ErrInvalidArgument, amplitude)
	}

	if amplitude > MaxAmplitude {
		amplitude = MaxAmplitude
	}

	return Output{
		Modulation: (amplitude / MaxAmplitude) * math.Pi,
		Scaling:    ScalingConstant / frequency,
	}, nil
}

// #endregion calculate

// #region calculate-combined

// CalculateCombined returns modulation × scaling for one input pair.
func CalculateCombined(amplitude, frequency float64) (float64, error) {
	out, err := Calculate(amplitude, frequency)
	if err != nil {
		return 0, err
	}
	return out.Modulation * out.Scaling, nil
}

// #endregion calculate-combined

// #region calculate-batch

// CalculateBatch applies Calculate pairwise over two equal-length sequences,
// preserving input order. Results are element-wise identical to individual
// Calculate calls.
func CalculateBatch(amplitudes, frequencies []float64) ([]Output, error) {
	if len(amplitudes) != len(frequencies) {
		return nil, fmt.Errorf("%w: sequence lengths differ (%d amplitudes, %d frequencies)",
			ErrInvalidArgument, len(amplitudes), len(frequencies))
	}

	results := make([]Output, len(amplitudes))
	for i := range amplitudes {
		out, err := Calculate(amplitudes[i], frequencies[i])
		if err != nil {
			return nil, err
		}
		results[i] = out
	}
	return results, nil
}

// #endregion calculate-batch

// #region calculate-vectorized

// CalculateVectorized evaluates the transform elementwise over two arrays,
// returning separate modulation and scaling arrays. All inputs are validated
// before any element is computed.
func CalculateVectorized(amplitudes, frequencies []float64) ([]float64, []float64, error) {
	if len(amplitudes) != len(frequencies) {
		return nil, nil, fmt.Errorf("%w: sequence lengths differ (%d amplitudes, %d frequencies)",
			ErrInvalidArgument, len(amplitudes), len(frequencies))
	}
	for i, f := range frequencies {
		if f <= 0 {
			return nil, nil, fmt.Errorf("%w: frequency must be positive, got %g at index %d", ErrInvalidArgument, f, i)
		}
	}
	for i, a := range amplitudes {
		if a < 0 {
			return nil, nil, fmt.Errorf("%w: amplitude must be non-negative, got %g at index %d", ErrInvalidArgument, a, i)
		}
	}

	modulations := make([]float64, len(amplitudes))
	scalings := make([]float64, len(amplitudes))
	for i := range amplitudes {
		a := amplitudes[i]
		if a > MaxAmplitude {
			a = MaxAmplitude
		}
		modulations[i] = (a / MaxAmplitude) * math.Pi
		scalings[i] = ScalingConstant / frequencies[i]
	}
	return modulations, scalings, nil
}

// #endregion calculate-vectorized
