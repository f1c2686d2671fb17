package logging

import "time"

// #region turn-entry
// TurnEntry is a single row in the turn_log table.
type TurnEntry struct {
	TurnID      string
	Stimulus    string
	Response    string
	Mode        string // "intuitive" | "analytical" | "deep"
	Depth       string
	Stage       string
	Level       float64
	RecordJSON  string
	FailureNote string
	CreatedAt   time.Time
}

// #endregion turn-entry

// #region turn-record
// TurnRecord captures the complete decision inputs for a single turn.
// Serialized as JSON into turn_log.record_json for deterministic replay.
type TurnRecord struct {
	TurnID   string `json:"turn_id"`
	Stimulus string `json:"stimulus"`
	Response string `json:"response"`

	// Exact analysis values as computed at runtime
	Analysis TurnRecordAnalysis `json:"analysis"`

	// Strategy parameters active when the turn was dispatched
	Strategy TurnRecordStrategy `json:"strategy"`

	// Engine state after the turn committed
	ExperienceLevel  float64 `json:"experience_level"`
	Stage            string  `json:"stage"`
	InteractionCount int     `json:"interaction_count"`
	KnowledgeGrowth  float64 `json:"knowledge_growth"`
}

// TurnRecordAnalysis captures the analysis values that fed strategy selection.
type TurnRecordAnalysis struct {
	Amplitude       float64            `json:"amplitude"`
	Frequency       float64            `json:"frequency"`
	Modulation      float64            `json:"modulation"`
	Scaling         float64            `json:"scaling"`
	Combined        float64            `json:"combined"`
	Mode            string             `json:"mode"`
	Depth           string             `json:"depth"`
	CreativityScore float64            `json:"creativity_score"`
	EmotionScores   map[string]float64 `json:"emotion_scores,omitempty"`
}

// TurnRecordStrategy captures the generation parameters active at dispatch.
type TurnRecordStrategy struct {
	MaxOutputSize   int     `json:"max_output_size"`
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"top_k"`
	TopP            float64 `json:"top_p"`
	CreativityBoost float64 `json:"creativity_boost"`
	DepthMultiplier float64 `json:"depth_multiplier"`
}

// #endregion turn-record
