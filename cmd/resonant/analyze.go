package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edterre/resonant/internal/transform"
)

// #region command

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <samples-file>",
		Short: "Run signal analysis over a file of samples",
		Long: `Read normalized samples (one per line, or whitespace/comma separated),
extract the dominant frequency, and classify its band.

Example:
  resonant analyze --rate 256 recording.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, _ := cmd.Flags().GetFloat64("rate")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read samples: %w", err)
			}
			samples, err := parseSamples(string(data))
			if err != nil {
				return err
			}

			analysis, err := transform.AnalyzeSignal(samples, rate)
			if err != nil {
				return err
			}

			fmt.Printf("samples:            %d @ %.1f Hz\n", analysis.Length, analysis.SampleRate)
			fmt.Printf("amplitude:          %.2f\n", analysis.Amplitude)
			fmt.Printf("dominant frequency: %.2f Hz (%s band)\n", analysis.DominantFrequency, analysis.Band)
			fmt.Printf("modulation:         %.4f\n", analysis.Modulation)
			fmt.Printf("scaling:            %.4f\n", analysis.Scaling)
			fmt.Printf("combined:           %.4f\n", analysis.Combined)
			return nil
		},
	}
	cmd.Flags().Float64("rate", 256, "Sample rate in Hz")
	return cmd
}

// #endregion command

// #region parsing

// parseSamples reads float samples separated by newlines, commas, or spaces.
func parseSamples(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ',' || r == ' ' || r == '\t'
	})
	samples := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parse sample %q: %w", f, err)
		}
		samples = append(samples, v)
	}
	return samples, nil
}

// #endregion parsing
