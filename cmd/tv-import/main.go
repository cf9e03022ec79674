package main

import (
	"fmt"
	"log/slog"
	"os"

	"tv-import/internal/input"
	"tv-import/internal/model"
	"tv-import/internal/parse"
	"tv-import/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		slog.Error("failed to create data dir", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	fmt.Println("Paste your TradingView data (one line per interval).")
	fmt.Println("Enter an empty line to finish input.")

	lines, err := input.ReadBatch(os.Stdin)
	if err != nil {
		slog.Error("failed to read input", "error", err)
		os.Exit(1)
	}

	bars := make([]model.Bar, 0, len(lines))
	var rejected int
	for _, line := range lines {
		bar, err := parse.Line(line, a.Loc)
		if err != nil {
			slog.Warn("skipping line", "error", err)
			rejected++
			continue
		}
		bars = append(bars, bar)
	}

	if len(bars) == 0 {
		slog.Info("no valid data entered", "rejected", rejected)
		return
	}

	rows, err := a.Merger.Run(bars)
	if err != nil {
		slog.Error("failed to persist table", "error", err)
		os.Exit(1)
	}
	slog.Info("import done", "accepted", len(bars), "rejected", rejected, "rows", len(rows))
}
