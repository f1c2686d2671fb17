package engine

// #region imports
import "time"

// #endregion

// #region cognitive-mode

// CognitiveMode classifies one call's effort level, derived from the
// combined transform factor.
type CognitiveMode string

const (
	ModeIntuitive  CognitiveMode = "intuitive"
	ModeAnalytical CognitiveMode = "analytical"
	ModeDeep       CognitiveMode = "deep"
)

// #endregion cognitive-mode

// #region processing-depth

// ProcessingDepth estimates how deep a single call's reasoning should go.
type ProcessingDepth string

const (
	DepthSurface      ProcessingDepth = "surface"
	DepthModerate     ProcessingDepth = "moderate"
	DepthDeep         ProcessingDepth = "deep"
	DepthTranscendent ProcessingDepth = "transcendent"
)

// #endregion processing-depth

// #region stage

// Stage is one of four ordered lifecycle labels for the engine's
// long-run experience.
type Stage string

const (
	StageNascent      Stage = "nascent"
	StageDeveloping   Stage = "developing"
	StageMature       Stage = "mature"
	StageTranscendent Stage = "transcendent"
)

// #endregion stage

// #region session-state

// SessionState is the engine's lifetime state, mutated only by the
// post-call update step.
type SessionState struct {
	ExperienceLevel  float64 // ≥ 1.0, never decreases
	Stage            Stage   // never regresses
	InteractionCount int
}

// #endregion session-state

// #region analysis

// Analysis is the intermediate per-call record produced by the analyze phase.
type Analysis struct {
	Amplitude       float64
	Frequency       float64
	Modulation      float64
	Scaling         float64
	CombinedFactor  float64
	CognitiveMode   CognitiveMode
	EmotionScores   map[string]float64
	CreativityScore float64
	ProcessingDepth ProcessingDepth
}

// #endregion analysis

// #region strategy

// Strategy is a generation parameter bundle for one call.
type Strategy struct {
	MaxOutputSize   int
	Temperature     float64
	TopK            int
	TopP            float64
	CreativityBoost float64
	DepthMultiplier float64
}

// #endregion strategy

// #region memory-interface

// MemoryStats summarizes the memory collaborator's contents.
type MemoryStats struct {
	TotalInteractions  int
	AvgKnowledgeWeight float64
	AvgSuccessRate     float64
	TotalNodes         int
	MaxDepth           int
}

// Suggestions carries memory-derived confidence for a stimulus.
type Suggestions struct {
	Confidence     float64 // in [0, 1]
	RelatedStimuli []string
}

// LearningOutcome reports what the memory collaborator learned from one turn.
type LearningOutcome struct {
	KnowledgeGrowth float64
}

// Memory is the external long-term memory collaborator. All calls are
// treated as potentially expensive; the engine imposes no retry or backoff.
type Memory interface {
	Stats() (MemoryStats, error)
	EnhancedSuggestions(stimulus string) (Suggestions, error)
	RecordInteraction(stimulus, response string, success bool) (LearningOutcome, error)
	Optimize() error
	Persist() error
}

// #endregion memory-interface

// #region think-result

// ThinkResult bundles everything produced by one completed Think call.
type ThinkResult struct {
	TurnID           string
	Stimulus         string
	Response         string
	Method           string // "backend" | "templated"
	Analysis         Analysis
	Strategy         Strategy
	MemoryConfidence float64
	Outcome          LearningOutcome
	State            SessionState // state after the post-call update
	ThinkTime        time.Duration
}

// #endregion think-result
