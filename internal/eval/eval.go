package eval

import (
	"fmt"
	"math"

	"github.com/edterre/resonant/internal/engine"
)

// #region harness
// Harness runs lightweight post-turn validation on think results.
type Harness struct {
	config Config
}

// NewHarness creates a harness with the given configuration.
func NewHarness(config Config) *Harness {
	return &Harness{config: config}
}

// Run validates one completed turn against the previous experience level.
// Returns pass/fail with metrics. No extra Generate calls.
func (h *Harness) Run(result engine.ThinkResult, prevLevel float64) Result {
	var metrics []Metric
	passed := true
	var failReasons []string

	// 1. Modulation bounds: amplitude modulation lives in [0, pi]
	mod := result.Analysis.Modulation
	modPass := mod >= 0 && mod <= math.Pi
	metrics = append(metrics, Metric{
		Name:  "modulation",
		Value: mod,
		Pass:  modPass,
	})
	if !modPass {
		passed = false
		failReasons = append(failReasons, fmt.Sprintf("modulation %.4f outside [0, pi]", mod))
	}

	// 2. Effective temperature: temperature scaled by the creativity boost
	effTemp := result.Strategy.Temperature * result.Strategy.CreativityBoost
	tempPass := effTemp > 0 && effTemp <= h.config.MaxTemperature
	metrics = append(metrics, Metric{
		Name:  "effective_temperature",
		Value: effTemp,
		Pass:  tempPass,
	})
	if !tempPass {
		passed = false
		failReasons = append(failReasons, fmt.Sprintf("effective temperature %.4f outside (0, %.4f]", effTemp, h.config.MaxTemperature))
	}

	// 3. Token budget: output size scaled by the depth multiplier
	effTokens := float64(result.Strategy.MaxOutputSize) * result.Strategy.DepthMultiplier
	tokensPass := effTokens > 0 && effTokens <= float64(h.config.MaxOutputTokens)
	metrics = append(metrics, Metric{
		Name:  "effective_tokens",
		Value: effTokens,
		Pass:  tokensPass,
	})
	if !tokensPass {
		passed = false
		failReasons = append(failReasons, fmt.Sprintf("token budget %.0f outside (0, %d]", effTokens, h.config.MaxOutputTokens))
	}

	// 4. Level monotonicity: experience never falls below the prior turn
	level := result.State.ExperienceLevel
	levelPass := level >= prevLevel && level >= h.config.LevelBaseline
	metrics = append(metrics, Metric{
		Name:  "experience_level",
		Value: level,
		Pass:  levelPass,
	})
	if !levelPass {
		passed = false
		failReasons = append(failReasons, fmt.Sprintf("experience level %.4f regressed below %.4f", level, math.Max(prevLevel, h.config.LevelBaseline)))
	}

	// 5. Top-p check: informational, does not fail the turn
	topPPass := result.Strategy.TopP >= h.config.MinTopP
	metrics = append(metrics, Metric{
		Name:  "top_p",
		Value: result.Strategy.TopP,
		Pass:  topPPass,
	})

	// 6. Growth check: informational, flags runaway knowledge growth
	growthPass := result.Outcome.KnowledgeGrowth <= h.config.GrowthCeiling
	metrics = append(metrics, Metric{
		Name:  "knowledge_growth",
		Value: result.Outcome.KnowledgeGrowth,
		Pass:  growthPass,
	})

	reason := "all checks passed"
	if !passed {
		reason = fmt.Sprintf("eval failed: %s", failReasons[0])
		if len(failReasons) > 1 {
			reason = fmt.Sprintf("eval failed: %d checks: %s", len(failReasons), failReasons[0])
		}
	}

	return Result{
		Passed:  passed,
		Metrics: metrics,
		Reason:  reason,
	}
}

// #endregion harness
