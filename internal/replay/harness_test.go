package replay

import (
	"testing"

	"github.com/edterre/resonant/internal/engine"
	"github.com/edterre/resonant/internal/eval"
)

// #region helpers

// recordTurn builds a fixture turn whose recorded values come from the same
// deterministic phases the harness re-runs, so it reproduces exactly.
func recordTurn(t *testing.T, turnID, stimulus string, confidence, level, postLevel float64) FixtureTurn {
	t.Helper()
	analyzer := engine.NewAnalyzer(engine.DefaultKeywords())
	analysis, err := analyzer.Analyze(stimulus, level)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	strategy := engine.SelectStrategy(analysis, confidence)
	return FixtureTurn{
		TurnID:           turnID,
		Stimulus:         stimulus,
		MemoryConfidence: confidence,
		Recorded: FixtureRecorded{
			Modulation:      analysis.Modulation,
			Scaling:         analysis.Scaling,
			Combined:        analysis.CombinedFactor,
			Mode:            string(analysis.CognitiveMode),
			Depth:           string(analysis.ProcessingDepth),
			MaxOutputSize:   strategy.MaxOutputSize,
			Temperature:     strategy.Temperature,
			TopK:            strategy.TopK,
			TopP:            strategy.TopP,
			CreativityBoost: strategy.CreativityBoost,
			DepthMultiplier: strategy.DepthMultiplier,
		},
		PostLevel: postLevel,
	}
}

func startState() engine.SessionState {
	return engine.SessionState{
		ExperienceLevel:  1.5,
		Stage:            engine.StageDeveloping,
		InteractionCount: 20,
	}
}

// #endregion helpers

// #region replay-tests

func TestReplay_ReproducesRecordedTurns(t *testing.T) {
	turns := []FixtureTurn{
		recordTurn(t, "t1", "what makes a melody memorable", 0.3, 1.5, 1.55),
		recordTurn(t, "t2", "compare two sorting approaches", 0.5, 1.55, 1.6),
	}

	results, final := Replay(startState(), turns, eval.DefaultConfig())

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, r := range results {
		if r.Action != "match" {
			t.Errorf("turn %s: action = %q (%s), want match", r.TurnID, r.Action, r.Reason)
		}
	}
	if final.InteractionCount != 22 {
		t.Errorf("final InteractionCount = %d, want 22", final.InteractionCount)
	}
	if final.ExperienceLevel != 1.6 {
		t.Errorf("final ExperienceLevel = %v, want 1.6", final.ExperienceLevel)
	}
}

func TestReplay_DetectsDriftedStrategy(t *testing.T) {
	turn := recordTurn(t, "t1", "what makes a melody memorable", 0.3, 1.5, 1.55)
	turn.Recorded.Temperature += 0.05

	results, _ := Replay(startState(), []FixtureTurn{turn}, eval.DefaultConfig())

	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Action != "drift" {
		t.Errorf("action = %q, want drift", results[0].Action)
	}
}

func TestReplay_DetectsDriftedMode(t *testing.T) {
	turn := recordTurn(t, "t1", "what makes a melody memorable", 0.3, 1.5, 1.55)
	turn.Recorded.Mode = "deep"
	turn.Recorded.DepthMultiplier = 2.0

	results, _ := Replay(startState(), []FixtureTurn{turn}, eval.DefaultConfig())

	if results[0].Action != "drift" {
		t.Errorf("action = %q, want drift", results[0].Action)
	}
}

func TestReplay_EmptyStimulusIsDrift(t *testing.T) {
	turn := FixtureTurn{TurnID: "t1", Stimulus: "", PostLevel: 1.5}

	results, final := Replay(startState(), []FixtureTurn{turn}, eval.DefaultConfig())

	if results[0].Action != "drift" {
		t.Errorf("action = %q, want drift", results[0].Action)
	}
	if final.InteractionCount != startState().InteractionCount {
		t.Errorf("failed analyze must not advance the count, got %d", final.InteractionCount)
	}
}

func TestReplay_LevelNeverRegresses(t *testing.T) {
	turns := []FixtureTurn{
		recordTurn(t, "t1", "what makes a melody memorable", 0.3, 1.5, 1.6),
		// Recorded with the higher level; a lower post level must be ignored.
		recordTurn(t, "t2", "compare two sorting approaches", 0.5, 1.6, 1.2),
	}

	results, final := Replay(startState(), turns, eval.DefaultConfig())

	for _, r := range results {
		if r.Action != "match" {
			t.Errorf("turn %s: action = %q (%s)", r.TurnID, r.Action, r.Reason)
		}
	}
	if final.ExperienceLevel != 1.6 {
		t.Errorf("final ExperienceLevel = %v, want 1.6 retained", final.ExperienceLevel)
	}
}

func TestReplay_StageAdvancesWithCount(t *testing.T) {
	start := engine.SessionState{
		ExperienceLevel:  1.5,
		Stage:            engine.StageDeveloping,
		InteractionCount: 99,
	}
	turn := recordTurn(t, "t1", "what makes a melody memorable", 0.3, 1.5, 1.55)

	_, final := Replay(start, []FixtureTurn{turn}, eval.DefaultConfig())

	if final.Stage != engine.StageMature {
		t.Errorf("final Stage = %q, want mature at 100 interactions", final.Stage)
	}
}

// #endregion replay-tests

// #region summary-tests

func TestSummarize(t *testing.T) {
	results := []Result{
		{TurnID: "t1", Action: "match"},
		{TurnID: "t2", Action: "match"},
		{TurnID: "t3", Action: "drift"},
		{TurnID: "t4", Action: "eval_fail"},
	}
	final := engine.SessionState{ExperienceLevel: 1.7, Stage: engine.StageDeveloping, InteractionCount: 24}

	s := Summarize(results, final)

	if s.TotalTurns != 4 {
		t.Errorf("TotalTurns = %d, want 4", s.TotalTurns)
	}
	if s.Matches != 2 || s.Drifts != 1 || s.EvalFails != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", s.Matches, s.Drifts, s.EvalFails)
	}
	if s.FinalState.InteractionCount != 24 {
		t.Errorf("FinalState.InteractionCount = %d", s.FinalState.InteractionCount)
	}
}

// #endregion summary-tests
