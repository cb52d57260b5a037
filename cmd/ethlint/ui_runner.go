package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/olehManboy/Ethlint/internal/driver"
	"github.com/olehManboy/Ethlint/internal/lint"
	"github.com/olehManboy/Ethlint/internal/ui"
)

type lintOutcome struct {
	results []driver.FileResult
	err     error
}

// runLintWithUI drives the lint run behind a live progress display. The
// driver feeds per-file events into the model; results are collected once
// both the run and the UI have finished.
func runLintWithUI(cmd *cobra.Command, reg *lint.Registry, files []string, raw lint.RawConfig, opts driver.Options) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan lintOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = events
		res, err := driver.LintFiles(cmd.Context(), reg, files, raw, optsCopy)
		outcomeCh <- lintOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("Linting", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
