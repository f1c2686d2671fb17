package engine

// #region base-strategy

// BaseStrategy returns the fixed starting parameter bundle for every call.
func BaseStrategy() Strategy {
	return Strategy{
		MaxOutputSize:   512,
		Temperature:     0.8,
		TopK:            40,
		TopP:            0.95,
		CreativityBoost: 1.0,
		DepthMultiplier: 1.0,
	}
}

// #endregion base-strategy

// #region mode-overrides

// modeOverrides maps cognitive mode → full strategy bundle. Analytical keeps
// the base output size and top-p; deep and intuitive override everything.
var modeOverrides = map[CognitiveMode]Strategy{
	ModeDeep: {
		MaxOutputSize:   1024,
		Temperature:     0.9,
		TopK:            50,
		TopP:            0.98,
		CreativityBoost: 1.5,
		DepthMultiplier: 2.0,
	},
	ModeAnalytical: {
		MaxOutputSize:   512,
		Temperature:     0.7,
		TopK:            35,
		TopP:            0.95,
		CreativityBoost: 1.2,
		DepthMultiplier: 1.5,
	},
	ModeIntuitive: {
		MaxOutputSize:   256,
		Temperature:     0.6,
		TopK:            30,
		TopP:            0.90,
		CreativityBoost: 0.8,
		DepthMultiplier: 0.8,
	},
}

// #endregion mode-overrides

// #region select-strategy

// SelectStrategy picks the parameter bundle for one call. Adjustments are
// applied in a pinned order: mode override, then creativity scaling, then
// memory-confidence depth scaling. Temperature and creativity boost only
// ever scale up from the mode values.
func SelectStrategy(analysis Analysis, memoryConfidence float64) Strategy {
	strategy, ok := modeOverrides[analysis.CognitiveMode]
	if !ok {
		strategy = BaseStrategy()
	}

	if analysis.CreativityScore > 0.5 {
		strategy.Temperature *= 1 + analysis.CreativityScore*0.3
		strategy.CreativityBoost *= 1 + analysis.CreativityScore*0.5
	}

	if memoryConfidence > 0.7 {
		strategy.DepthMultiplier *= 1.3
	}

	return strategy
}

// #endregion select-strategy
