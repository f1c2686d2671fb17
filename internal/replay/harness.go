package replay

import (
	"fmt"
	"math"

	"github.com/edterre/resonant/internal/engine"
	"github.com/edterre/resonant/internal/eval"
)

// #region types

// matchTolerance bounds the allowed drift between a recorded float and its
// recomputed value.
const matchTolerance = 1e-9

// Result captures the outcome of replaying one turn through the pure
// analyze and strategy phases.
type Result struct {
	TurnID string
	Action string // "match" | "drift" | "eval_fail"
	Reason string

	// Recomputed values for this turn
	Analysis engine.Analysis
	Strategy engine.Strategy

	// Eval stage over the recomputed turn
	EvalResult *eval.Result

	// Level after this turn (recorded post-level applied monotonically)
	Level float64
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalTurns int
	Matches    int
	Drifts     int
	EvalFails  int
	FinalState engine.SessionState
}

// #endregion types

// #region replay

// Replay re-runs each recorded turn through the deterministic analyze and
// strategy phases and compares the results against what the runtime
// recorded. Drift means the recorded decision cannot be reproduced from its
// inputs. Operates entirely in-memory; no backend or memory calls.
func Replay(startState engine.SessionState, turns []FixtureTurn, config eval.Config) ([]Result, engine.SessionState) {
	analyzer := engine.NewAnalyzer(engine.DefaultKeywords())
	harness := eval.NewHarness(config)

	current := startState
	results := make([]Result, 0, len(turns))

	for _, turn := range turns {
		prevLevel := current.ExperienceLevel

		analysis, err := analyzer.Analyze(turn.Stimulus, current.ExperienceLevel)
		if err != nil {
			results = append(results, Result{
				TurnID: turn.TurnID,
				Action: "drift",
				Reason: fmt.Sprintf("analyze: %v", err),
				Level:  current.ExperienceLevel,
			})
			continue
		}
		strategy := engine.SelectStrategy(analysis, turn.MemoryConfidence)

		// Advance state the way the runtime did before judging the turn.
		current.InteractionCount++
		if turn.PostLevel > current.ExperienceLevel {
			current.ExperienceLevel = turn.PostLevel
		}
		current.Stage = engine.StageFor(current.InteractionCount)

		if reason, ok := compare(turn.Recorded, analysis, strategy); !ok {
			results = append(results, Result{
				TurnID:   turn.TurnID,
				Action:   "drift",
				Reason:   reason,
				Analysis: analysis,
				Strategy: strategy,
				Level:    current.ExperienceLevel,
			})
			continue
		}

		evalResult := harness.Run(engine.ThinkResult{
			TurnID:   turn.TurnID,
			Stimulus: turn.Stimulus,
			Analysis: analysis,
			Strategy: strategy,
			State:    current,
		}, prevLevel)
		if !evalResult.Passed {
			results = append(results, Result{
				TurnID:     turn.TurnID,
				Action:     "eval_fail",
				Reason:     evalResult.Reason,
				Analysis:   analysis,
				Strategy:   strategy,
				EvalResult: &evalResult,
				Level:      current.ExperienceLevel,
			})
			continue
		}

		results = append(results, Result{
			TurnID:     turn.TurnID,
			Action:     "match",
			Reason:     "reproduced",
			Analysis:   analysis,
			Strategy:   strategy,
			EvalResult: &evalResult,
			Level:      current.ExperienceLevel,
		})
	}

	return results, current
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result, finalState engine.SessionState) Summary {
	s := Summary{
		TotalTurns: len(results),
		FinalState: finalState,
	}
	for _, r := range results {
		switch r.Action {
		case "match":
			s.Matches++
		case "drift":
			s.Drifts++
		case "eval_fail":
			s.EvalFails++
		}
	}
	return s
}

// #endregion replay

// #region compare

func compare(recorded FixtureRecorded, analysis engine.Analysis, strategy engine.Strategy) (string, bool) {
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"modulation", analysis.Modulation, recorded.Modulation},
		{"scaling", analysis.Scaling, recorded.Scaling},
		{"combined", analysis.CombinedFactor, recorded.Combined},
		{"temperature", strategy.Temperature, recorded.Temperature},
		{"top_p", strategy.TopP, recorded.TopP},
		{"creativity_boost", strategy.CreativityBoost, recorded.CreativityBoost},
		{"depth_multiplier", strategy.DepthMultiplier, recorded.DepthMultiplier},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > matchTolerance {
			return fmt.Sprintf("%s drifted: recorded %.6f, recomputed %.6f", c.name, c.want, c.got), false
		}
	}

	if recorded.Mode != "" && recorded.Mode != string(analysis.CognitiveMode) {
		return fmt.Sprintf("mode drifted: recorded %q, recomputed %q", recorded.Mode, analysis.CognitiveMode), false
	}
	if recorded.Depth != "" && recorded.Depth != string(analysis.ProcessingDepth) {
		return fmt.Sprintf("depth drifted: recorded %q, recomputed %q", recorded.Depth, analysis.ProcessingDepth), false
	}
	if recorded.MaxOutputSize != strategy.MaxOutputSize {
		return fmt.Sprintf("max output size drifted: recorded %d, recomputed %d", recorded.MaxOutputSize, strategy.MaxOutputSize), false
	}
	if recorded.TopK != strategy.TopK {
		return fmt.Sprintf("top-k drifted: recorded %d, recomputed %d", recorded.TopK, strategy.TopK), false
	}
	return "", true
}

// #endregion compare
