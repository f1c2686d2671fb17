// Package memory implements the engine's long-term memory collaborator as a
// SQLite-backed interaction store with weighted nodes and keyword-overlap
// suggestion confidence.
package memory

// #region imports
import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/edterre/resonant/internal/engine"
)

// #endregion imports

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS interaction_nodes (
    node_id          TEXT PRIMARY KEY,
    stimulus         TEXT NOT NULL,
    response         TEXT NOT NULL,
    success          INTEGER NOT NULL DEFAULT 1,
    knowledge_weight REAL NOT NULL DEFAULT 1.0,
    depth            INTEGER NOT NULL DEFAULT 0,
    created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_nodes_created ON interaction_nodes(created_at);
`

// #endregion schema

// #region tuning

const (
	// suggestionWindow bounds how many recent nodes feed suggestion scoring.
	suggestionWindow = 50
	// relatedThreshold is the minimum word-overlap fraction for a node to
	// count as related to a stimulus.
	relatedThreshold = 0.2
	// pruneHalfLifeHours drives the exponential age decay used by Optimize.
	pruneHalfLifeHours = 7 * 24
	// pruneFloor is the decayed weight below which Optimize removes a node.
	pruneFloor = 0.05
)

// #endregion tuning

// #region store-struct

// Store persists interaction nodes in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store-struct

// #region stats

// Stats aggregates the store's contents for engine bootstrap and level updates.
func (s *Store) Stats() (engine.MemoryStats, error) {
	var stats engine.MemoryStats
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(AVG(knowledge_weight), 1.0),
		       COALESCE(AVG(success), 0.0),
		       COALESCE(MAX(depth), 0)
		FROM interaction_nodes`,
	).Scan(&stats.TotalNodes, &stats.AvgKnowledgeWeight, &stats.AvgSuccessRate, &stats.MaxDepth)
	if err != nil {
		return engine.MemoryStats{}, fmt.Errorf("stats: %w", err)
	}
	stats.TotalInteractions = stats.TotalNodes
	return stats, nil
}

// #endregion stats

// #region suggestions

// EnhancedSuggestions scores the stimulus against recent nodes by word
// overlap. Confidence is the best overlap fraction seen, in [0, 1].
func (s *Store) EnhancedSuggestions(stimulus string) (engine.Suggestions, error) {
	words := significantWords(stimulus)
	if len(words) == 0 {
		return engine.Suggestions{}, nil
	}

	rows, err := s.db.Query(`
		SELECT stimulus FROM interaction_nodes
		ORDER BY created_at DESC LIMIT ?`, suggestionWindow)
	if err != nil {
		return engine.Suggestions{}, fmt.Errorf("query suggestions: %w", err)
	}
	defer rows.Close()

	var best float64
	var related []string
	for rows.Next() {
		var past string
		if err := rows.Scan(&past); err != nil {
			return engine.Suggestions{}, fmt.Errorf("scan suggestion: %w", err)
		}
		overlap := overlapFraction(words, significantWords(past))
		if overlap >= relatedThreshold {
			related = append(related, past)
		}
		if overlap > best {
			best = overlap
		}
	}
	if err := rows.Err(); err != nil {
		return engine.Suggestions{}, err
	}

	return engine.Suggestions{Confidence: best, RelatedStimuli: related}, nil
}

// #endregion suggestions

// #region record

// RecordInteraction stores one completed turn. The node's knowledge weight
// grows with its overlap against existing knowledge; depth is the number of
// related nodes found, capped at the suggestion window.
func (s *Store) RecordInteraction(stimulus, response string, success bool) (engine.LearningOutcome, error) {
	suggestions, err := s.EnhancedSuggestions(stimulus)
	if err != nil {
		return engine.LearningOutcome{}, err
	}

	weight := 1.0 + suggestions.Confidence*0.5
	if success {
		weight += 0.1
	}

	successInt := 0
	if success {
		successInt = 1
	}

	_, err = s.db.Exec(`
		INSERT INTO interaction_nodes
		(node_id, stimulus, response, success, knowledge_weight, depth, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		stimulus,
		response,
		successInt,
		weight,
		len(suggestions.RelatedStimuli),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return engine.LearningOutcome{}, fmt.Errorf("insert node: %w", err)
	}

	return engine.LearningOutcome{KnowledgeGrowth: weight - 1.0}, nil
}

// #endregion record

// #region optimize

// Optimize prunes nodes whose age-decayed weight has fallen below the floor.
func (s *Store) Optimize() error {
	rows, err := s.db.Query(`SELECT node_id, knowledge_weight, created_at FROM interaction_nodes`)
	if err != nil {
		return fmt.Errorf("query for optimize: %w", err)
	}
	defer rows.Close()

	now := time.Now().UTC()
	var stale []string
	for rows.Next() {
		var id, createdStr string
		var weight float64
		if err := rows.Scan(&id, &weight, &createdStr); err != nil {
			return fmt.Errorf("scan for optimize: %w", err)
		}
		createdAt, err := time.Parse(time.RFC3339Nano, createdStr)
		if err != nil {
			continue
		}
		ageHours := now.Sub(createdAt).Hours()
		if weight*math.Exp(-ageHours/pruneHalfLifeHours) < pruneFloor {
			stale = append(stale, id)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range stale {
		if _, err := s.db.Exec(`DELETE FROM interaction_nodes WHERE node_id = ?`, id); err != nil {
			return fmt.Errorf("prune node %s: %w", id, err)
		}
	}
	return nil
}

// #endregion optimize

// #region persist

// Persist checkpoints the WAL so the on-disk database is self-contained.
func (s *Store) Persist() error {
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}

// #endregion persist

// #region word-helpers

// significantWords returns the lowercased words of length > 3.
func significantWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if len(w) > 3 {
			words[w] = struct{}{}
		}
	}
	return words
}

// overlapFraction returns the fraction of a's words also present in b.
func overlapFraction(a, b map[string]struct{}) float64 {
	if len(a) == 0 {
		return 0
	}
	shared := 0
	for w := range a {
		if _, ok := b[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(a))
}

// #endregion word-helpers
