package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/edterre/resonant/internal/engine"
	"github.com/edterre/resonant/internal/eval"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	StartState  FixtureState  `json:"start_state"`
	Config      FixtureConfig `json:"config"`
	Turns       []FixtureTurn `json:"turns"`
}

// FixtureState is the JSON-serializable engine state.
type FixtureState struct {
	ExperienceLevel  float64 `json:"experience_level"`
	Stage            string  `json:"stage"`
	InteractionCount int     `json:"interaction_count"`
}

// FixtureTurn is one recorded turn: the inputs the engine saw and the
// analysis, strategy, and post-turn level it produced at runtime.
type FixtureTurn struct {
	TurnID           string          `json:"turn_id"`
	Stimulus         string          `json:"stimulus"`
	MemoryConfidence float64         `json:"memory_confidence"`
	Recorded         FixtureRecorded `json:"recorded"`
	PostLevel        float64         `json:"post_level"`
}

// FixtureRecorded mirrors the runtime analysis and strategy with JSON tags.
type FixtureRecorded struct {
	Modulation      float64 `json:"modulation"`
	Scaling         float64 `json:"scaling"`
	Combined        float64 `json:"combined"`
	Mode            string  `json:"mode"`
	Depth           string  `json:"depth"`
	MaxOutputSize   int     `json:"max_output_size"`
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"top_k"`
	TopP            float64 `json:"top_p"`
	CreativityBoost float64 `json:"creativity_boost"`
	DepthMultiplier float64 `json:"depth_multiplier"`
}

// FixtureConfig mirrors eval.Config with JSON tags.
type FixtureConfig struct {
	MaxTemperature  float64 `json:"max_temperature"`
	MaxOutputTokens int     `json:"max_output_tokens"`
	MinTopP         float64 `json:"min_top_p"`
	LevelBaseline   float64 `json:"level_baseline"`
	GrowthCeiling   float64 `json:"growth_ceiling"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToSessionState converts a FixtureState to a domain SessionState.
func (s *FixtureState) ToSessionState() engine.SessionState {
	return engine.SessionState{
		ExperienceLevel:  s.ExperienceLevel,
		Stage:            engine.Stage(s.Stage),
		InteractionCount: s.InteractionCount,
	}
}

// ToEvalConfig converts a FixtureConfig to a domain eval.Config. Zero-value
// configs fall back to the defaults.
func (fc *FixtureConfig) ToEvalConfig() eval.Config {
	if *fc == (FixtureConfig{}) {
		return eval.DefaultConfig()
	}
	return eval.Config{
		MaxTemperature:  fc.MaxTemperature,
		MaxOutputTokens: fc.MaxOutputTokens,
		MinTopP:         fc.MinTopP,
		LevelBaseline:   fc.LevelBaseline,
		GrowthCeiling:   fc.GrowthCeiling,
	}
}

// ToStrategy converts the recorded parameters to a domain Strategy.
func (r *FixtureRecorded) ToStrategy() engine.Strategy {
	return engine.Strategy{
		MaxOutputSize:   r.MaxOutputSize,
		Temperature:     r.Temperature,
		TopK:            r.TopK,
		TopP:            r.TopP,
		CreativityBoost: r.CreativityBoost,
		DepthMultiplier: r.DepthMultiplier,
	}
}

// #endregion fixture-loader
