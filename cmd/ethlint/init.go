package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/olehManboy/Ethlint/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Long: `Write a ` + config.FileName + ` with every recommended rule enabled.
If [path] is omitted, the current directory is used. Refuses to overwrite
an existing configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		target = args[0]
		if !filepath.IsAbs(target) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, target)
		}
	}

	if st, err := os.Stat(target); err != nil {
		return err
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	path, err := config.WriteDefault(target)
	if err != nil {
		return err
	}

	rel := path
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, path); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", rel)
	return nil
}
