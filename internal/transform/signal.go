package transform

// #region imports
import (
	"fmt"
	"log"
	"math"
)

// #endregion imports

// #region classify-band

// ClassifyBand returns the first matching band for a frequency,
// or BandUnknown if no range matches.
func ClassifyBand(frequency float64) Band {
	for _, entry := range bandTable {
		if frequency >= entry.low && frequency < entry.high {
			return entry.band
		}
	}
	return BandUnknown
}

// #endregion classify-band

// #region analyze-signal

// AnalyzeSignal derives amplitude and dominant frequency from raw samples,
// runs the transform on them, and classifies the frequency band.
// Amplitude is max(|sample|)·255; the dominant frequency comes from the
// magnitude peak of the DFT restricted to non-negative frequency bins.
func AnalyzeSignal(samples []float64, sampleRate float64) (SignalAnalysis, error) {
	if len(samples) == 0 {
		return SignalAnalysis{}, fmt.Errorf("%w: empty sample sequence", ErrInvalidArgument)
	}
	if sampleRate <= 0 {
		return SignalAnalysis{}, fmt.Errorf("%w: sample rate must be positive, got %g", ErrInvalidArgument, sampleRate)
	}

	var peak float64
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	amplitude := peak * MaxAmplitude

	dominant := dominantFrequency(samples, sampleRate)
	if dominant <= 0 {
		// Silent or DC-dominated input gets 1.0 instead of an error.
		// Logged so callers can spot masked input.
		log.Printf("[TRANSFORM] non-positive dominant frequency, substituting 1.0")
		dominant = 1.0
	}

	out, err := Calculate(amplitude, dominant)
	if err != nil {
		return SignalAnalysis{}, err
	}

	return SignalAnalysis{
		Amplitude:         amplitude,
		DominantFrequency: dominant,
		Modulation:        out.Modulation,
		Scaling:           out.Scaling,
		Combined:          out.Modulation * out.Scaling,
		Band:              ClassifyBand(dominant),
		Length:            len(samples),
		SampleRate:        sampleRate,
	}, nil
}

// #endregion analyze-signal

// #region dft

// dominantFrequency finds the frequency of the magnitude-peak DFT bin among
// the first n/2 bins (non-negative frequencies, mirror half excluded).
func dominantFrequency(samples []float64, sampleRate float64) float64 {
	n := len(samples)
	half := n / 2
	if half == 0 {
		half = 1
	}

	bestBin := 0
	bestMag := -1.0
	for k := 0; k < half; k++ {
		var re, im float64
		for t, s := range samples {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			re += s * math.Cos(angle)
			im += s * math.Sin(angle)
		}
		mag := re*re + im*im
		if mag > bestMag {
			bestMag = mag
			bestBin = k
		}
	}

	return float64(bestBin) * sampleRate / float64(n)
}

// #endregion dft
