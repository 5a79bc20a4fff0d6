// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/heart-risk/assessment"
)

func newFieldsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the questionnaire fields and their wire codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(assessment.Fields)
			}
			_, err := fmt.Fprintln(out, fieldsTable())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalogue as JSON")
	return cmd
}

func fieldsTable() string {
	rows := make([][]string, len(assessment.Fields))
	for i, spec := range assessment.Fields {
		rows[i] = []string{string(spec.Name), spec.Label, describeAnswers(spec)}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FIELD", "QUESTION", "ANSWERS").
		Rows(rows...).
		String()
}

// describeAnswers lists value=code pairs, or the numeric range
func describeAnswers(spec assessment.FieldSpec) string {
	if spec.IsChoice() {
		parts := make([]string, len(spec.Options))
		for i, o := range spec.Options {
			parts[i] = fmt.Sprintf("%s=%d", o.Value, o.Code)
		}
		return strings.Join(parts, " ")
	}

	lo, hi := spec.MinAttr(), spec.MaxAttr()
	switch {
	case lo != "" && hi != "":
		return fmt.Sprintf("%s %s..%s", spec.Kind, lo, hi)
	case lo != "":
		return fmt.Sprintf("%s >= %s", spec.Kind, lo)
	default:
		return fmt.Sprintf("%s > 0", spec.Kind)
	}
}
