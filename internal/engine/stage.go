package engine

// #region thresholds

// stageThresholds lists stages in order with their inclusive lower bounds
// on interaction count and the baseline experience level assigned when an
// engine is bootstrapped into that stage.
var stageThresholds = []struct {
	stage    Stage
	minCount int
	baseline float64
}{
	{StageNascent, 0, 1.0},
	{StageDeveloping, 10, 1.5},
	{StageMature, 100, 2.0},
	{StageTranscendent, 1000, 3.0},
}

// evolveIncrement is the fixed experience gain when a manual evolution
// trigger advances into the keyed stage.
var evolveIncrement = map[Stage]float64{
	StageDeveloping:   0.2,
	StageMature:       0.3,
	StageTranscendent: 0.5,
}

// #endregion thresholds

// #region stage-for

// StageFor returns the stage for a total interaction count.
func StageFor(interactionCount int) Stage {
	stage := StageNascent
	for _, entry := range stageThresholds {
		if interactionCount >= entry.minCount {
			stage = entry.stage
		}
	}
	return stage
}

// baselineLevel returns the experience level assigned at construction for
// a stage.
func baselineLevel(stage Stage) float64 {
	for _, entry := range stageThresholds {
		if entry.stage == stage {
			return entry.baseline
		}
	}
	return 1.0
}

// #endregion stage-for

// #region next-stage

// nextStage returns the stage after s and its interaction threshold.
// ok is false when s is already terminal.
func nextStage(s Stage) (next Stage, minCount int, ok bool) {
	for i, entry := range stageThresholds {
		if entry.stage == s && i+1 < len(stageThresholds) {
			return stageThresholds[i+1].stage, stageThresholds[i+1].minCount, true
		}
	}
	return s, 0, false
}

// #endregion next-stage
