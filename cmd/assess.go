// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/heart-risk/assessment"
	"github.com/danielhkuo/heart-risk/logging"
	"github.com/danielhkuo/heart-risk/models"
	"github.com/danielhkuo/heart-risk/observability"
	"github.com/danielhkuo/heart-risk/predictor"
)

var errNeedAnswers = errors.New("stdin is not a terminal: pass an answers file with --file")

func newAssessCommand() *cobra.Command {
	var (
		answersFile string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Answer the questionnaire in the terminal and print the risk",
		Long: `assess asks the seventeen questions interactively, or reads them from a
YAML file keyed by field name (see "heartrisk fields"), then prints the
result panel.`,
		Example: "  heartrisk assess -u https://host/predict --file answers.yaml --json",
		Args:    cobra.NoArgs,
	}
	cfg := bindConfig(cmd)
	cmd.Flags().StringVarP(&answersFile, "file", "f", "", "YAML answers file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd, cfg); err != nil {
			return err
		}
		if cfg.TraceStdout {
			shutdown, err := observability.InitTracing("heartrisk", cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer shutdown(context.Background())
		}

		c := assessment.NewController(predictor.NewClient(cfg.PredictURL, cfg.PredictTimeout))

		switch {
		case answersFile != "":
			form, err := readAnswers(answersFile)
			if err != nil {
				return err
			}
			c.Load(form)
		case logging.IsTerminal(cmd.InOrStdin()):
			if err := askAnswers(cmd.Context(), c); err != nil {
				return err
			}
		default:
			return errNeedAnswers
		}

		if _, err := c.Submit(cmd.Context()); err != nil {
			return err
		}
		view, _ := c.View()

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		}
		_, err := fmt.Fprintln(out, renderPanel(view))
		return err
	}
	return cmd
}

// readAnswers decodes a YAML answers file. Unknown keys are rejected.
func readAnswers(path string) (models.FormState, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.FormState{}, err
	}
	defer f.Close()
	return decodeAnswers(f)
}

func decodeAnswers(r io.Reader) (models.FormState, error) {
	var form models.FormState
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&form); err != nil && !errors.Is(err, io.EOF) {
		return models.FormState{}, fmt.Errorf("failed to read answers: %w", err)
	}
	return form, nil
}

// askAnswers runs one huh form over the whole catalogue and feeds every
// answer to the controller
func askAnswers(ctx context.Context, c *assessment.Controller) error {
	answers := make([]string, len(assessment.Fields))

	var groups []*huh.Group
	var page []huh.Field
	for i, spec := range assessment.Fields {
		page = append(page, askField(spec, &answers[i]))
		if len(page) == 6 || i == len(assessment.Fields)-1 {
			groups = append(groups, huh.NewGroup(page...))
			page = nil
		}
	}

	if err := huh.NewForm(groups...).RunWithContext(ctx); err != nil {
		return err
	}

	for i, spec := range assessment.Fields {
		if err := c.UpdateField(spec.Name, answers[i]); err != nil {
			return err
		}
	}
	return nil
}

func askField(spec assessment.FieldSpec, value *string) huh.Field {
	if spec.IsChoice() {
		options := make([]huh.Option[string], len(spec.Options))
		for i, o := range spec.Options {
			options[i] = huh.NewOption(o.Label, o.Value)
		}
		return huh.NewSelect[string]().
			Title(spec.Label).
			Options(options...).
			Value(value)
	}

	return huh.NewInput().
		Title(spec.Label).
		Placeholder(spec.Placeholder).
		Value(value).
		Validate(func(s string) error {
			if s == "" {
				return errors.New("required")
			}
			return spec.Check(s)
		})
}
