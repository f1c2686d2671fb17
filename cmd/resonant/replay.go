package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edterre/resonant/internal/replay"
)

// #region command

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <fixture.json>",
		Short: "Re-run recorded turns and verify they reproduce",
		Long: `Load a fixture of recorded turns and re-run each through the
deterministic analyze and strategy phases. Any turn whose recorded
decision cannot be reproduced from its inputs is reported as drift.

Exits non-zero if any turn drifts or fails validation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return runReplay(args[0], verbose)
		},
	}
	cmd.Flags().Bool("verbose", false, "Print every turn, not just failures")
	return cmd
}

// #endregion command

// #region replay

func runReplay(fixturePath string, verbose bool) error {
	fixture, err := replay.LoadFixture(fixturePath)
	if err != nil {
		return err
	}

	if fixture.Description != "" {
		fmt.Printf("fixture: %s\n", fixture.Description)
	}

	results, finalState := replay.Replay(
		fixture.StartState.ToSessionState(),
		fixture.Turns,
		fixture.Config.ToEvalConfig(),
	)
	summary := replay.Summarize(results, finalState)

	for _, r := range results {
		if r.Action == "match" && !verbose {
			continue
		}
		fmt.Printf("[%s] %s: %s\n", r.TurnID, r.Action, r.Reason)
	}

	fmt.Printf("turns: %d | match: %d | drift: %d | eval_fail: %d\n",
		summary.TotalTurns, summary.Matches, summary.Drifts, summary.EvalFails)
	fmt.Printf("final: stage=%s level=%.2f interactions=%d\n",
		summary.FinalState.Stage, summary.FinalState.ExperienceLevel, summary.FinalState.InteractionCount)

	if summary.Drifts > 0 || summary.EvalFails > 0 {
		return fmt.Errorf("replay failed: %d of %d turns did not reproduce",
			summary.Drifts+summary.EvalFails, summary.TotalTurns)
	}
	return nil
}

// #endregion replay
