package eval

// #region config
// Config holds thresholds for post-turn validation.
type Config struct {
	MaxTemperature  float64 // reject if effective temperature exceeds this
	MaxOutputTokens int     // reject if the effective token budget exceeds this
	MinTopP         float64 // warn if top-p falls below this
	LevelBaseline   float64 // reject if experience level falls below this
	GrowthCeiling   float64 // warn if a single turn's knowledge growth exceeds this
}

// DefaultConfig returns the thresholds used by the interactive session.
func DefaultConfig() Config {
	return Config{
		MaxTemperature:  3.0,
		MaxOutputTokens: 4096,
		MinTopP:         0.5,
		LevelBaseline:   1.0,
		GrowthCeiling:   1.0,
	}
}

// #endregion config

// #region metric
// Metric captures a single validation check result.
type Metric struct {
	Name  string
	Value float64
	Pass  bool
}

// #endregion metric

// #region result
// Result is the output of post-turn validation.
type Result struct {
	Passed  bool
	Metrics []Metric
	Reason  string
}

// #endregion result
