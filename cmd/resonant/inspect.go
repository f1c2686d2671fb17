package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edterre/resonant/internal/memory"
)

// #region command

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect memory stats and recent turns in a database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			last, _ := cmd.Flags().GetInt("last")
			jsonOut, _ := cmd.Flags().GetBool("json")
			return runInspect(cfg.DBPath, last, jsonOut)
		},
	}
	cmd.Flags().Int("last", 10, "Show N most recent turns")
	cmd.Flags().Bool("json", false, "Output as JSON instead of a table")
	return cmd
}

// #endregion command

// #region inspect

type turnRow struct {
	TurnID    string  `json:"turn_id"`
	Stimulus  string  `json:"stimulus"`
	Mode      string  `json:"mode"`
	Stage     string  `json:"stage"`
	Level     float64 `json:"level"`
	CreatedAt string  `json:"created_at"`
}

func runInspect(dbPath string, last int, jsonOut bool) error {
	store, err := memory.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	rows, err := store.DB().Query(`
		SELECT turn_id, stimulus, mode, stage, level, created_at
		FROM turn_log ORDER BY created_at DESC LIMIT ?`, last)
	if err != nil {
		// A memory-only database has no turn log yet.
		rows = nil
	}

	var turns []turnRow
	if rows != nil {
		defer rows.Close()
		for rows.Next() {
			var r turnRow
			if err := rows.Scan(&r.TurnID, &r.Stimulus, &r.Mode, &r.Stage, &r.Level, &r.CreatedAt); err != nil {
				return fmt.Errorf("scan turn: %w", err)
			}
			turns = append(turns, r)
		}
		if err := rows.Err(); err != nil {
			return err
		}
	}

	if jsonOut {
		out := struct {
			TotalInteractions  int       `json:"total_interactions"`
			AvgKnowledgeWeight float64   `json:"avg_knowledge_weight"`
			AvgSuccessRate     float64   `json:"avg_success_rate"`
			MaxDepth           int       `json:"max_depth"`
			Turns              []turnRow `json:"turns,omitempty"`
		}{
			TotalInteractions:  stats.TotalInteractions,
			AvgKnowledgeWeight: stats.AvgKnowledgeWeight,
			AvgSuccessRate:     stats.AvgSuccessRate,
			MaxDepth:           stats.MaxDepth,
			Turns:              turns,
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	fmt.Printf("interactions: %d | avg weight: %.3f | success rate: %.2f | max depth: %d\n",
		stats.TotalInteractions, stats.AvgKnowledgeWeight, stats.AvgSuccessRate, stats.MaxDepth)
	if len(turns) == 0 {
		fmt.Println("no logged turns")
		return nil
	}
	for _, r := range turns {
		fmt.Printf("%-8s  %-10s  %-12s  %.2f  %s\n",
			shortID(r.TurnID), r.Mode, r.Stage, r.Level, truncate(r.Stimulus, 48))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// #endregion inspect
