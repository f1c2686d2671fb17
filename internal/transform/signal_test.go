package transform

import (
	"math"
	"testing"
)

// sine generates n samples of a sine wave at freq Hz with the given peak.
func sine(n int, freq, sampleRate, peak float64) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = peak * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}
	return samples
}

func TestClassifyBand(t *testing.T) {
	tests := []struct {
		name      string
		frequency float64
		want      Band
	}{
		{"delta", 3.0, BandDelta},
		{"delta-lower-bound", 0.5, BandDelta},
		{"theta", 5.0, BandTheta},
		{"theta-boundary", 4.0, BandTheta},
		{"alpha", 10.0, BandAlpha},
		{"beta", 20.0, BandBeta},
		{"gamma", 60.0, BandGamma},
		{"above-gamma", 1000.0, BandUnknown},
		{"gamma-upper-bound-excluded", 100.0, BandUnknown},
		{"below-delta", 0.2, BandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyBand(tt.frequency); got != tt.want {
				t.Errorf("ClassifyBand(%g): got %q, want %q", tt.frequency, got, tt.want)
			}
		})
	}
}

func TestAnalyzeSignal_DominantFrequency(t *testing.T) {
	// 10 Hz sine sampled at 128 Hz over one second lands exactly on bin 10.
	samples := sine(128, 10, 128, 1.0)

	analysis, err := AnalyzeSignal(samples, 128)
	if err != nil {
		t.Fatalf("AnalyzeSignal: %v", err)
	}
	if math.Abs(analysis.DominantFrequency-10.0) > 0.5 {
		t.Errorf("dominant frequency: got %v, want ~10", analysis.DominantFrequency)
	}
	if analysis.Band != BandAlpha {
		t.Errorf("band: got %q, want %q", analysis.Band, BandAlpha)
	}
	if analysis.Length != 128 {
		t.Errorf("length: got %d, want 128", analysis.Length)
	}
	if analysis.SampleRate != 128 {
		t.Errorf("sample rate: got %v, want 128", analysis.SampleRate)
	}
}

func TestAnalyzeSignal_AmplitudeScaling(t *testing.T) {
	// Peak 0.5 → derived amplitude 127.5.
	samples := sine(64, 4, 64, 0.5)

	analysis, err := AnalyzeSignal(samples, 64)
	if err != nil {
		t.Fatalf("AnalyzeSignal: %v", err)
	}
	if math.Abs(analysis.Amplitude-127.5) > 1e-6 {
		t.Errorf("amplitude: got %v, want 127.5", analysis.Amplitude)
	}
	if analysis.Modulation < 0 || analysis.Modulation > math.Pi {
		t.Errorf("modulation %v outside [0, π]", analysis.Modulation)
	}
}

func TestAnalyzeSignal_SilentInputFallsBackToUnitFrequency(t *testing.T) {
	samples := make([]float64, 32) // all zeros, DC bin wins

	analysis, err := AnalyzeSignal(samples, 32)
	if err != nil {
		t.Fatalf("AnalyzeSignal: %v", err)
	}
	if analysis.DominantFrequency != 1.0 {
		t.Errorf("dominant frequency: got %v, want fallback 1.0", analysis.DominantFrequency)
	}
	if analysis.Amplitude != 0 {
		t.Errorf("amplitude: got %v, want 0", analysis.Amplitude)
	}
	if analysis.Scaling != ScalingConstant {
		t.Errorf("scaling: got %v, want %v", analysis.Scaling, ScalingConstant)
	}
}

func TestAnalyzeSignal_InvalidInputs(t *testing.T) {
	if _, err := AnalyzeSignal(nil, 44100); err == nil {
		t.Error("expected error for empty samples")
	}
	if _, err := AnalyzeSignal([]float64{1, 2, 3}, 0); err == nil {
		t.Error("expected error for zero sample rate")
	}
}
