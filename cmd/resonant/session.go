package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edterre/resonant/internal/backend"
	"github.com/edterre/resonant/internal/config"
	"github.com/edterre/resonant/internal/engine"
	"github.com/edterre/resonant/internal/eval"
	"github.com/edterre/resonant/internal/logging"
	"github.com/edterre/resonant/internal/memory"
)

// #region command

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Run an interactive session against the decision engine",
		Long: `Start an interactive loop. Each line is a stimulus unless it is one of
the control words: status, evolve, optimize, help, quit.

Every completed turn is validated and appended to the turn log.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runSession(cfg)
		},
	}
}

// resolveConfig loads configuration and applies the global flag overrides.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	dbPath, _ := cmd.Flags().GetString("db")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// #endregion command

// #region session-loop

func runSession(cfg *config.Config) error {
	store, err := memory.NewStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open memory store: %w", err)
	}
	defer store.Close()

	if err := logging.EnsureSchema(store.DB()); err != nil {
		return err
	}

	var generator backend.Generator
	if cfg.Backend.Enabled {
		generator = &backend.Subprocess{
			CLIPath:   cfg.Backend.CLIPath,
			ModelPath: cfg.Backend.ModelPath,
			Timeout:   cfg.BackendTimeout(),
		}
	}

	eng, err := engine.New(store, generator, cfg.KeywordConfig())
	if err != nil {
		return err
	}
	harness := eval.NewHarness(eval.DefaultConfig())

	state := eng.State()
	fmt.Println("Resonant session ready.")
	fmt.Printf("  DB: %s | backend: %s\n", cfg.DBPath, backendLabel(cfg))
	fmt.Printf("  Stage: %s | level: %.1f | interactions: %d\n",
		state.Stage, state.ExperienceLevel, state.InteractionCount)
	fmt.Println("Type a stimulus (or 'help' for commands):")

	scanner := bufio.NewScanner(os.Stdin)
	turnsThisSession := 0

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch parseCommand(line) {
		case cmdQuit:
			if err := eng.Shutdown(); err != nil {
				log.Printf("[SESSION] shutdown: %v", err)
			}
			fmt.Println("Session closed.")
			return nil
		case cmdStatus:
			printStatus(eng.State())
			continue
		case cmdEvolve:
			state, advanced := eng.Evolve()
			if advanced {
				fmt.Printf("Evolved to %s stage at level %.2f.\n", state.Stage, state.ExperienceLevel)
			} else {
				fmt.Printf("Not ready: %s stage needs more interactions.\n", state.Stage)
			}
			continue
		case cmdOptimize:
			if err := eng.Optimize(); err != nil {
				log.Printf("[SESSION] optimize: %v", err)
			} else {
				fmt.Println("Memory optimized.")
			}
			continue
		case cmdHelp:
			printHelp()
			continue
		}

		prevLevel := eng.State().ExperienceLevel
		result, err := eng.Think(context.Background(), line)
		if err != nil {
			log.Printf("[SESSION] think: %v", err)
			continue
		}

		fmt.Printf("\n%s\n\n", result.Response)

		evalResult := harness.Run(result, prevLevel)
		if !evalResult.Passed {
			log.Printf("[SESSION] eval: %s", evalResult.Reason)
		}
		logTurn(store, result, evalResult)

		fmt.Printf("[%s] mode=%s depth=%s level=%.2f took=%s\n",
			shortID(result.TurnID), result.Analysis.CognitiveMode,
			result.Analysis.ProcessingDepth, result.State.ExperienceLevel, result.ThinkTime)

		turnsThisSession++
		if cfg.Session.AutoOptimizeEvery > 0 && turnsThisSession%cfg.Session.AutoOptimizeEvery == 0 {
			if err := eng.Optimize(); err != nil {
				log.Printf("[SESSION] periodic optimize: %v", err)
			}
		}
	}

	return eng.Shutdown()
}

// #endregion session-loop

// #region turn-logging

// logTurn appends one completed turn to the turn log. Logging failures are
// reported but never interrupt the session.
func logTurn(store *memory.Store, result engine.ThinkResult, evalResult eval.Result) {
	record := logging.TurnRecord{
		TurnID:   result.TurnID,
		Stimulus: result.Stimulus,
		Response: result.Response,
		Analysis: logging.TurnRecordAnalysis{
			Amplitude:       result.Analysis.Amplitude,
			Frequency:       result.Analysis.Frequency,
			Modulation:      result.Analysis.Modulation,
			Scaling:         result.Analysis.Scaling,
			Combined:        result.Analysis.CombinedFactor,
			Mode:            string(result.Analysis.CognitiveMode),
			Depth:           string(result.Analysis.ProcessingDepth),
			CreativityScore: result.Analysis.CreativityScore,
			EmotionScores:   result.Analysis.EmotionScores,
		},
		Strategy: logging.TurnRecordStrategy{
			MaxOutputSize:   result.Strategy.MaxOutputSize,
			Temperature:     result.Strategy.Temperature,
			TopK:            result.Strategy.TopK,
			TopP:            result.Strategy.TopP,
			CreativityBoost: result.Strategy.CreativityBoost,
			DepthMultiplier: result.Strategy.DepthMultiplier,
		},
		ExperienceLevel:  result.State.ExperienceLevel,
		Stage:            string(result.State.Stage),
		InteractionCount: result.State.InteractionCount,
		KnowledgeGrowth:  result.Outcome.KnowledgeGrowth,
	}
	recordJSON, _ := json.Marshal(record)

	failureNote := ""
	if !evalResult.Passed {
		failureNote = evalResult.Reason
	}

	err := logging.LogTurn(store.DB(), logging.TurnEntry{
		TurnID:      result.TurnID,
		Stimulus:    result.Stimulus,
		Response:    result.Response,
		Mode:        string(result.Analysis.CognitiveMode),
		Depth:       string(result.Analysis.ProcessingDepth),
		Stage:       string(result.State.Stage),
		Level:       result.State.ExperienceLevel,
		RecordJSON:  string(recordJSON),
		FailureNote: failureNote,
	})
	if err != nil {
		log.Printf("[SESSION] turn log: %v", err)
	}
}

// #endregion turn-logging

// #region helpers

func printStatus(state engine.SessionState) {
	fmt.Printf("stage=%s level=%.2f interactions=%d\n",
		state.Stage, state.ExperienceLevel, state.InteractionCount)
}

func printHelp() {
	fmt.Println("commands: status | evolve | optimize | help | quit")
	fmt.Println("anything else is sent to the engine as a stimulus")
}

func backendLabel(cfg *config.Config) string {
	if cfg.Backend.Enabled {
		return cfg.Backend.CLIPath
	}
	return "templated (no subprocess)"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion helpers
