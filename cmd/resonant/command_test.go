package main

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want sessionCommand
	}{
		{"quit", cmdQuit},
		{"exit", cmdQuit},
		{"shutdown", cmdQuit},
		{"  QUIT  ", cmdQuit},
		{"status", cmdStatus},
		{"state", cmdStatus},
		{"evolve", cmdEvolve},
		{"optimize", cmdOptimize},
		{"help", cmdHelp},
		{"?", cmdHelp},
		{"", cmdNone},
		{"what is the status of my order", cmdNone},
		{"tell me about evolution", cmdNone},
	}

	for _, tt := range tests {
		if got := parseCommand(tt.line); got != tt.want {
			t.Errorf("parseCommand(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
