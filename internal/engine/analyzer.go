package engine

// #region imports
import (
	"strings"

	"github.com/edterre/resonant/internal/transform"
)

// #endregion imports

// #region thresholds

const (
	deepModeThreshold       = 100.0 // combined factor above this → deep
	analyticalModeThreshold = 30.0  // combined factor above this → analytical
	depthBaseThreshold      = 50.0  // processing depth threshold per unit of experience
	creativityNormalizer    = 3.0   // keyword hits that saturate the creativity score
)

// #endregion thresholds

// #region analyzer

// Analyzer runs the pure analyze phase: stimulus → transform inputs →
// cognitive mode, emotion scores, creativity, processing depth.
type Analyzer struct {
	keywords KeywordConfig
}

// NewAnalyzer creates an analyzer with the given keyword tables.
func NewAnalyzer(keywords KeywordConfig) *Analyzer {
	return &Analyzer{keywords: keywords}
}

// #endregion analyzer

// #region analyze

// Analyze derives transform inputs from the stimulus, evaluates the
// transform, and classifies the call. Deterministic for a given stimulus
// and experience level.
func (a *Analyzer) Analyze(stimulus string, experienceLevel float64) (Analysis, error) {
	amplitude := float64(len(stimulus))
	if amplitude > transform.MaxAmplitude {
		amplitude = transform.MaxAmplitude
	}
	frequency := float64(countDistinctWords(stimulus))
	if frequency < 1 {
		frequency = 1
	}

	out, err := transform.Calculate(amplitude, frequency)
	if err != nil {
		return Analysis{}, err
	}

	combined := out.Modulation * out.Scaling * experienceLevel
	lower := strings.ToLower(stimulus)

	return Analysis{
		Amplitude:       amplitude,
		Frequency:       frequency,
		Modulation:      out.Modulation,
		Scaling:         out.Scaling,
		CombinedFactor:  combined,
		CognitiveMode:   classifyMode(combined),
		EmotionScores:   a.emotionScores(lower),
		CreativityScore: a.creativityScore(lower),
		ProcessingDepth: classifyDepth(combined, experienceLevel),
	}, nil
}

// #endregion analyze

// #region classify-mode

func classifyMode(combined float64) CognitiveMode {
	switch {
	case combined > deepModeThreshold:
		return ModeDeep
	case combined > analyticalModeThreshold:
		return ModeAnalytical
	default:
		return ModeIntuitive
	}
}

// #endregion classify-mode

// #region classify-depth

func classifyDepth(combined, experienceLevel float64) ProcessingDepth {
	threshold := depthBaseThreshold * experienceLevel
	switch {
	case combined > threshold*2:
		return DepthTranscendent
	case combined > threshold:
		return DepthDeep
	case combined > threshold*0.5:
		return DepthModerate
	default:
		return DepthSurface
	}
}

// #endregion classify-depth

// #region emotion-scores

// emotionScores returns, per category, the fraction of that category's
// keywords found as substrings of the lowercased stimulus.
func (a *Analyzer) emotionScores(lower string) map[string]float64 {
	scores := make(map[string]float64, len(a.keywords.Emotions))
	for category, keywords := range a.keywords.Emotions {
		hits := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		score := float64(hits) / float64(len(keywords))
		if score > 1 {
			score = 1
		}
		scores[category] = score
	}
	return scores
}

// #endregion emotion-scores

// #region creativity-score

func (a *Analyzer) creativityScore(lower string) float64 {
	hits := 0
	for _, kw := range a.keywords.Creativity {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	score := float64(hits) / creativityNormalizer
	if score > 1 {
		score = 1
	}
	return score
}

// #endregion creativity-score

// #region word-count

// countDistinctWords counts unique lowercased whitespace-delimited words.
func countDistinctWords(stimulus string) int {
	words := strings.Fields(strings.ToLower(stimulus))
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	return len(unique)
}

// #endregion word-count
