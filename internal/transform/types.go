package transform

// #region constants

const (
	// MaxAmplitude is the normalization bound for amplitude inputs.
	MaxAmplitude = 255.0
	// ScalingConstant is the fixed numerator of the scaling component.
	ScalingConstant = 406.4
)

// #endregion constants

// #region output

// Output holds the two components of one transform evaluation.
type Output struct {
	Modulation float64 // (amplitude/255)·π, always in [0, π]
	Scaling    float64 // 406.4/frequency
}

// #endregion output

// #region band

// Band labels a frequency range.
type Band string

const (
	BandDelta   Band = "delta"
	BandTheta   Band = "theta"
	BandAlpha   Band = "alpha"
	BandBeta    Band = "beta"
	BandGamma   Band = "gamma"
	BandUnknown Band = "unknown"
)

// bandTable maps bands to half-open [low, high) frequency ranges, in match order.
var bandTable = []struct {
	band Band
	low  float64
	high float64
}{
	{BandDelta, 0.5, 4.0},
	{BandTheta, 4.0, 8.0},
	{BandAlpha, 8.0, 13.0},
	{BandBeta, 13.0, 30.0},
	{BandGamma, 30.0, 100.0},
}

// #endregion band

// #region signal-analysis

// SignalAnalysis is the result of analyzing a raw sample sequence.
type SignalAnalysis struct {
	Amplitude         float64
	DominantFrequency float64
	Modulation        float64
	Scaling           float64
	Combined          float64
	Band              Band
	Length            int
	SampleRate        float64
}

// #endregion signal-analysis
