package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olehManboy/Ethlint/internal/config"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/diagfmt"
	"github.com/olehManboy/Ethlint/internal/driver"
	"github.com/olehManboy/Ethlint/internal/lint"
	"github.com/olehManboy/Ethlint/internal/rules"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] <file.sol|directory>...",
	Short: "Lint Solidity sources",
	Long:  "Run the configured rules over the given files or directories and report diagnostics.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().String("config", "", "path to a configuration file (default: search upward for "+config.FileName+")")
	lintCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	lintCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	lintCmd.Flags().Bool("return-internal", false, "include engine notices in the output")
	lintCmd.Flags().Bool("no-source", false, "omit source excerpts from pretty output")
	lintCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func runLint(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format = strings.ToLower(format)
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	files, err := collectTargets(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .sol files found under %s", strings.Join(args, ", "))
	}

	raw, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if internal, _ := cmd.Flags().GetBool("return-internal"); internal {
		raw.Options.ReturnInternalIssues = true
	}

	opts, err := buildDriverOptions(cmd)
	if err != nil {
		return err
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	reg := rules.Builtin()

	var results []driver.FileResult
	if format == "pretty" && shouldUseTUI(mode) {
		results, err = runLintWithUI(cmd, reg, files, raw, opts)
	} else {
		results, err = driver.LintFiles(cmd.Context(), reg, files, raw, opts)
	}
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	if format == "json" {
		out := make([]diagfmt.FileJSON, 0, len(results))
		for _, res := range results {
			out = append(out, diagfmt.NewFileJSON(res.Path, res.Diagnostics, res.Err))
		}
		if err := diagfmt.JSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
		return lintExitStatus(cmd, results)
	}

	noSource, err := cmd.Flags().GetBool("no-source")
	if err != nil {
		return err
	}
	popts := diagfmt.PrettyOpts{Color: useColor(cmd), ShowSource: !noSource}

	errCount, warnCount := 0, 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", res.Path, res.Err)
			errCount++
			continue
		}
		if len(res.Diagnostics) == 0 {
			continue
		}
		// Re-read for excerpts; a vanished file just loses its excerpt.
		src, _ := os.ReadFile(res.Path)
		diagfmt.Pretty(cmd.OutOrStdout(), res.Path, src, res.Diagnostics, popts)
		for _, d := range res.Diagnostics {
			switch {
			case d.Severity >= diag.SevError:
				errCount++
			case d.Severity == diag.SevWarning:
				warnCount++
			}
		}
	}
	if !quiet {
		diagfmt.Summary(cmd.OutOrStdout(), len(results), errCount, warnCount, popts)
	}
	return lintExitStatus(cmd, results)
}

// lintExitStatus makes the process exit nonzero when any file had an
// error-severity finding or failed to lint.
func lintExitStatus(cmd *cobra.Command, results []driver.FileResult) error {
	errCount := 0
	for _, res := range results {
		if res.Err != nil {
			errCount++
			continue
		}
		for _, d := range res.Diagnostics {
			if d.Severity >= diag.SevError {
				errCount++
			}
		}
	}
	if errCount == 0 {
		return nil
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("found %d errors", errCount)
}

// collectTargets expands file and directory arguments into a flat list of
// Solidity files, preserving argument order.
func collectTargets(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := driver.ListSolFiles(arg)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func loadConfig(cmd *cobra.Command) (lint.RawConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return lint.RawConfig{}, err
	}
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return lint.RawConfig{}, err
	}
	return config.LoadOrDefault(wd)
}

func buildDriverOptions(cmd *cobra.Command) (driver.Options, error) {
	var opts driver.Options

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return opts, err
	}
	opts.Jobs = jobs

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return opts, err
	}
	if !noCache {
		// A broken cache directory must not block linting.
		if cache, err := driver.OpenDiskCache("ethlint"); err == nil {
			opts.Cache = cache
		}
	}
	return opts, nil
}
