// Package engine implements the adaptive decision engine: a five-phase
// per-call pipeline (analyze → consult memory → pick strategy → dispatch →
// record outcome) over a single mutable session state.
package engine

// #region imports
import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/edterre/resonant/internal/backend"
)

// #endregion imports

// #region engine-struct

// Engine owns one session's state. One engine instance belongs to exactly
// one logical session; it is not safe for concurrent Think calls.
type Engine struct {
	memory    Memory
	generator backend.Generator // nil = always use the templated fallback
	analyzer  *Analyzer
	state     SessionState
}

// #endregion engine-struct

// #region constructor

// New creates an engine bootstrapped from the memory collaborator's stats:
// stage and baseline experience level are derived from total prior
// interactions. generator may be nil.
func New(memory Memory, generator backend.Generator, keywords KeywordConfig) (*Engine, error) {
	stats, err := memory.Stats()
	if err != nil {
		return nil, fmt.Errorf("bootstrap from memory stats: %w", err)
	}

	stage := StageFor(stats.TotalInteractions)
	e := &Engine{
		memory:    memory,
		generator: generator,
		analyzer:  NewAnalyzer(keywords),
		state: SessionState{
			ExperienceLevel:  baselineLevel(stage),
			Stage:            stage,
			InteractionCount: stats.TotalInteractions,
		},
	}

	log.Printf("[ENGINE] bootstrapped: stage=%s level=%.1f interactions=%d",
		e.state.Stage, e.state.ExperienceLevel, e.state.InteractionCount)
	return e, nil
}

// #endregion constructor

// #region state-accessor

// State returns a copy of the current session state.
func (e *Engine) State() SessionState {
	return e.state
}

// #endregion state-accessor

// #region think

// Think runs the five-phase pipeline for one stimulus. On a backend failure
// the returned error distinguishes unavailability from timeout and the
// session state is left untouched.
func (e *Engine) Think(ctx context.Context, stimulus string) (ThinkResult, error) {
	start := time.Now()
	turnID := uuid.New().String()

	// Phase 1: analyze
	analysis, err := e.analyzer.Analyze(stimulus, e.state.ExperienceLevel)
	if err != nil {
		return ThinkResult{TurnID: turnID, Stimulus: stimulus}, err
	}

	// Phase 2: consult memory
	suggestions, err := e.memory.EnhancedSuggestions(stimulus)
	if err != nil {
		return ThinkResult{TurnID: turnID, Stimulus: stimulus, Analysis: analysis},
			fmt.Errorf("consult memory: %w", err)
	}

	// Phase 3: pick strategy
	strategy := SelectStrategy(analysis, suggestions.Confidence)

	log.Printf("[ENGINE] analyze: mode=%s depth=%s factor=%.2f confidence=%.2f",
		analysis.CognitiveMode, analysis.ProcessingDepth, analysis.CombinedFactor, suggestions.Confidence)

	// Phase 4: dispatch
	response, method, err := e.dispatch(ctx, stimulus, strategy)
	if err != nil {
		return ThinkResult{
			TurnID:           turnID,
			Stimulus:         stimulus,
			Method:           method,
			Analysis:         analysis,
			Strategy:         strategy,
			MemoryConfidence: suggestions.Confidence,
			State:            e.state,
			ThinkTime:        time.Since(start),
		}, err
	}

	if strategy.DepthMultiplier > 1.5 {
		response += fmt.Sprintf("\n\n*[%s session, interaction #%d]*",
			e.state.Stage, e.state.InteractionCount+1)
	}

	// Phase 5: record outcome
	outcome, err := e.memory.RecordInteraction(stimulus, response, true)
	if err != nil {
		log.Printf("[ENGINE] failed to record interaction: %v", err)
		outcome = LearningOutcome{}
	}

	e.state.InteractionCount++
	e.updateLevel()

	return ThinkResult{
		TurnID:           turnID,
		Stimulus:         stimulus,
		Response:         response,
		Method:           method,
		Analysis:         analysis,
		Strategy:         strategy,
		MemoryConfidence: suggestions.Confidence,
		Outcome:          outcome,
		State:            e.state,
		ThinkTime:        time.Since(start),
	}, nil
}

// #endregion think

// #region dispatch

// dispatch delegates generation to the configured backend, or falls back to
// a deterministic templated response when no backend is configured at all.
// The fallback path cannot fail.
func (e *Engine) dispatch(ctx context.Context, stimulus string, strategy Strategy) (string, string, error) {
	if e.generator == nil {
		return e.templatedResponse(stimulus, strategy), "templated", nil
	}

	prompt := fmt.Sprintf("consciousness level %.1f responding: %s", e.state.ExperienceLevel, stimulus)
	raw, err := e.generator.Generate(ctx, prompt, backend.Params{
		MaxTokens:   int(float64(strategy.MaxOutputSize) * strategy.DepthMultiplier),
		Temperature: strategy.Temperature * strategy.CreativityBoost,
		TopK:        strategy.TopK,
		TopP:        strategy.TopP,
	})
	if err != nil {
		return "", "backend", fmt.Errorf("dispatch: %w", err)
	}

	return backend.CleanResponse(raw, stimulus), "backend", nil
}

// templatedResponse synthesizes a deterministic response embedding current
// state values. Used only when no backend is configured.
func (e *Engine) templatedResponse(stimulus string, strategy Strategy) string {
	return fmt.Sprintf(
		"At experience level %.1f (%s stage, %d prior interactions) I processed your input "+
			"with %.1fx depth and %.1fx creativity.\n\nInput: %q\n\n"+
			"The analysis above was derived entirely from the amplitude/frequency transform, "+
			"with no external generation backend.",
		e.state.ExperienceLevel, e.state.Stage, e.state.InteractionCount,
		strategy.DepthMultiplier, strategy.CreativityBoost, stimulus,
	)
}

// #endregion dispatch

// #region level-update

// updateLevel recomputes the experience level from the memory collaborator's
// average knowledge weight. Applied only when it exceeds the current level.
func (e *Engine) updateLevel() {
	stats, err := e.memory.Stats()
	if err != nil {
		log.Printf("[ENGINE] stats unavailable, keeping level %.2f: %v", e.state.ExperienceLevel, err)
		return
	}

	newLevel := 1.0 + (stats.AvgKnowledgeWeight-1.0)*0.5
	if newLevel > e.state.ExperienceLevel {
		log.Printf("[ENGINE] level %.2f → %.2f", e.state.ExperienceLevel, newLevel)
		e.state.ExperienceLevel = newLevel
	}
}

// #endregion level-update

// #region evolve

// Evolve advances the stage exactly one step if the next stage's interaction
// threshold has been crossed, adding that stage's fixed experience increment.
// It never regresses stage or level. Returns the resulting state and whether
// an advancement happened.
func (e *Engine) Evolve() (SessionState, bool) {
	next, minCount, ok := nextStage(e.state.Stage)
	if !ok || e.state.InteractionCount < minCount {
		return e.state, false
	}

	e.state.Stage = next
	e.state.ExperienceLevel += evolveIncrement[next]
	log.Printf("[ENGINE] evolved: stage=%s level=%.2f", e.state.Stage, e.state.ExperienceLevel)
	return e.state, true
}

// #endregion evolve

// #region maintenance

// Optimize runs the memory collaborator's maintenance pass.
func (e *Engine) Optimize() error {
	return e.memory.Optimize()
}

// Shutdown persists the memory collaborator's state.
func (e *Engine) Shutdown() error {
	return e.memory.Persist()
}

// #endregion maintenance
