package backend

// #region imports
import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// #endregion imports

// #region subprocess

// Subprocess runs a llama-cli style command for each generation call.
type Subprocess struct {
	CLIPath   string
	ModelPath string
	Timeout   time.Duration // 0 = DefaultTimeout
}

// NewSubprocess creates a subprocess generator for the given CLI and model paths.
func NewSubprocess(cliPath, modelPath string) *Subprocess {
	return &Subprocess{CLIPath: cliPath, ModelPath: modelPath}
}

// #endregion subprocess

// #region generate

// Generate invokes the CLI with derived sampling arguments and returns its
// trimmed stdout. Non-zero exit surfaces stderr wrapped in ErrUnavailable;
// exceeding the timeout budget surfaces ErrTimeout.
func (s *Subprocess) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.CLIPath, s.args(prompt, params)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("%w: no response within %s", ErrTimeout, timeout)
	}
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%w: %s", ErrUnavailable, detail)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// #endregion generate

// #region args

// args composes the CLI argument list for one call.
func (s *Subprocess) args(prompt string, params Params) []string {
	return []string{
		"-m", s.ModelPath,
		"-p", prompt,
		"-n", strconv.Itoa(params.MaxTokens),
		"--temp", strconv.FormatFloat(params.Temperature, 'g', -1, 64),
		"--top-k", strconv.Itoa(params.TopK),
		"--top-p", strconv.FormatFloat(params.TopP, 'g', -1, 64),
		"--no-warmup",
		"--simple-io",
	}
}

// #endregion args
