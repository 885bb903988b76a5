package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/formwork-lab/formwork/pkg/cli/config"
	"github.com/formwork-lab/formwork/pkg/domain/model"
)

func cmdValidate() *cli.Command {
	var formCfg config.Form

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a form configuration file",
		Flags:   formCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if formCfg.Path() == "" {
				return goerr.New("form-config is required")
			}

			cfg, err := config.LoadFormConfiguration(formCfg.Path())
			if err != nil {
				printValidationFailure(formCfg.Path(), err)
				return err
			}

			printValidationReport(formCfg.Path(), cfg)
			return nil
		},
	}
}

func printValidationFailure(path string, err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Printf("✗ %s\n", path)
	fmt.Printf("  %s\n", err.Error())

	if code, ok := model.ConfigErrorCodeOf(err); ok {
		fmt.Printf("  code: %s\n", color.YellowString(string(code)))
	}
}

func printValidationReport(path string, cfg *model.FormConfiguration) {
	green := color.New(color.FgGreen, color.Bold)
	green.Printf("✓ %s\n", path)
	fmt.Printf("  schema version: %d\n", cfg.Version)
	fmt.Printf("  steps: %d\n", len(cfg.Steps))

	for _, step := range cfg.Steps {
		label := step.Title
		if step.IsFinale {
			label += color.CyanString(" (finale)")
		}
		fmt.Printf("  - %s [%s]: %d field(s), %d system field(s)\n",
			label, step.ID, len(step.Fields), len(step.SystemFields))

		for _, f := range step.AllFields() {
			state := ""
			if !f.IsEnabled {
				state = color.YellowString(" disabled")
			}
			required := ""
			if f.IsRequired {
				required = " required"
			}
			fmt.Printf("      %s (%s)%s%s\n", f.Key, f.Type, required, state)
		}
	}
}
