package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olehManboy/Ethlint/internal/driver"
	"github.com/olehManboy/Ethlint/internal/rules"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.sol|directory>...",
	Short: "Apply available fixes to Solidity sources",
	Long:  "Run the configured rules, apply every non-conflicting fix, and rewrite the files in place.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().String("config", "", "path to a configuration file (default: search upward for configuration)")
	fixCmd.Flags().Bool("dry-run", false, "report what would change without writing files")
}

func runFix(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	files, err := collectTargets(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .sol files found")
	}

	raw, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	outcomes, err := driver.FixFiles(cmd.Context(), rules.Builtin(), files, raw, dryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	changed, failed := 0, 0
	for _, oc := range outcomes {
		switch {
		case oc.Err != nil:
			fmt.Fprintf(out, "%s: %v\n", oc.Path, oc.Err)
			failed++
		case oc.Changed:
			changed++
			if !quiet {
				verb := "fixed"
				if dryRun {
					verb = "would fix"
				}
				fmt.Fprintf(out, "%s: %s %d issue(s), %d remaining\n",
					oc.Path, verb, oc.Result.Applied, len(oc.Result.Remaining))
			}
		}
	}
	if !quiet {
		fmt.Fprintf(out, "%d of %d file(s) changed\n", changed, len(outcomes))
	}
	if failed > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}
