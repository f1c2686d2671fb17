package engine

// #region keyword-config

// KeywordConfig holds the emotion and creativity keyword tables. Loaded once
// at engine construction and immutable thereafter.
type KeywordConfig struct {
	Emotions   map[string][]string
	Creativity []string
}

// #endregion keyword-config

// #region defaults

// DefaultKeywords returns the built-in keyword tables.
func DefaultKeywords() KeywordConfig {
	return KeywordConfig{
		Emotions: map[string][]string{
			"joy": {
				"happy", "great", "awesome", "wonderful", "fantastic", "love",
			},
			"curiosity": {
				"how", "why", "what", "explain", "tell me", "learn",
			},
			"concern": {
				"worried", "problem", "issue", "help", "trouble", "difficult",
			},
			"excitement": {
				"amazing", "incredible", "wow", "unbelievable", "!", "revolutionary",
			},
		},
		Creativity: []string{
			"create", "imagine", "design", "invent", "think of", "come up with",
			"brainstorm", "innovative", "original", "unique", "creative",
		},
	}
}

// #endregion defaults
