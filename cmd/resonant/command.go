package main

import "strings"

// #region command-detection

// sessionCommand tags a line of session input that should bypass the engine.
type sessionCommand int

const (
	cmdNone sessionCommand = iota
	cmdQuit
	cmdStatus
	cmdEvolve
	cmdOptimize
	cmdHelp
)

// parseCommand classifies a session line. Anything not recognized as a
// control word is a stimulus for the engine.
func parseCommand(line string) sessionCommand {
	lower := strings.ToLower(strings.TrimSpace(line))
	switch lower {
	case "quit", "exit", "shutdown":
		return cmdQuit
	case "status", "state":
		return cmdStatus
	case "evolve":
		return cmdEvolve
	case "optimize":
		return cmdOptimize
	case "help", "?":
		return cmdHelp
	}
	return cmdNone
}

// #endregion command-detection
