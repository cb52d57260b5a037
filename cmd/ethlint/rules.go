package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olehManboy/Ethlint/internal/lint"
	"github.com/olehManboy/Ethlint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in rules",
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	rulesCmd.Flags().Bool("all", false, "include deprecated rules")
}

type rulePayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Recommended bool     `json:"recommended"`
	Fixable     bool     `json:"fixable"`
	Deprecated  bool     `json:"deprecated"`
	ReplacedBy  []string `json:"replaced_by,omitempty"`
}

func runRules(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	showAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}

	reg := rules.Builtin()
	var payloads []rulePayload
	for _, name := range reg.Names() {
		rule, _ := reg.Get(name)
		meta := rule.Meta()
		if meta.Deprecated && !showAll {
			continue
		}
		payloads = append(payloads, rulePayload{
			Name:        name,
			Description: meta.Docs.Description,
			Severity:    meta.Docs.Type.String(),
			Recommended: meta.Docs.Recommended,
			Fixable:     meta.Fixable == lint.FixableCode,
			Deprecated:  meta.Deprecated,
			ReplacedBy:  meta.Docs.ReplacedBy,
		})
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payloads)
	case "pretty":
		for _, p := range payloads {
			var tags []string
			if p.Recommended {
				tags = append(tags, "recommended")
			}
			if p.Fixable {
				tags = append(tags, "fixable")
			}
			if p.Deprecated {
				tags = append(tags, "deprecated")
			}
			suffix := ""
			if len(tags) > 0 {
				suffix = " [" + strings.Join(tags, ", ") + "]"
			}
			fmt.Fprintf(out, "%-24s %s%s\n", p.Name, p.Description, suffix)
			if len(p.ReplacedBy) > 0 {
				fmt.Fprintf(out, "%-24s replaced by: %s\n", "", strings.Join(p.ReplacedBy, ", "))
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
