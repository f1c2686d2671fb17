// Package backend abstracts the optional external text-generation service
// behind a narrow Generator interface so the engine never touches subprocess
// mechanics directly.
package backend

// #region imports
import (
	"context"
	"errors"
	"strings"
	"time"
)

// #endregion imports

// #region errors

// ErrUnavailable reports a backend process that exited non-zero.
var ErrUnavailable = errors.New("backend unavailable")

// ErrTimeout reports a backend call that exceeded its wall-clock budget.
var ErrTimeout = errors.New("backend timeout")

// #endregion errors

// #region params

// DefaultTimeout is the fixed wall-clock budget for one generation call.
const DefaultTimeout = 120 * time.Second

// Params carries the sampling parameters for one generation call.
type Params struct {
	MaxTokens   int
	Temperature float64
	TopK        int
	TopP        float64
}

// #endregion params

// #region generator-interface

// Generator produces text for a prompt. Implementations: subprocess CLI,
// test stubs.
type Generator interface {
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}

// #endregion generator-interface

// #region response-cleanup

// echoPrefixes are literal prefixes stripped from backend output after the
// stimulus echo is removed.
var echoPrefixes = []string{
	"consciousness level",
	"responding:",
	"Response:",
	"Answer:",
}

// CleanResponse strips a leading echo of the original stimulus and known
// prompt-template prefixes from raw backend output.
func CleanResponse(response, stimulus string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, stimulus) {
		response = strings.TrimSpace(response[len(stimulus):])
	}

	for _, prefix := range echoPrefixes {
		if strings.HasPrefix(response, prefix) {
			response = strings.TrimSpace(response[len(prefix):])
		}
	}

	return response
}

// #endregion response-cleanup
