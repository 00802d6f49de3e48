package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/phases"
)

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Inspect phase definitions",
}

var phasesValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Load a custom phase file and report every phase",
	Long: `Load the built-in phases from the environment and the custom phases from the
given file (or PROGRESSION_PHASES_FILE), then print the resulting table. Exits
non-zero when any custom phase was skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPhasesValidate,
}

func init() {
	phasesCmd.AddCommand(phasesValidateCmd)
}

func runPhasesValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	path := cfg.PhasesFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no phase file given and PROGRESSION_PHASES_FILE is not set")
	}

	ctx := context.Background()
	registry, err := phases.New(ctx, &phases.Config{
		Builtins: cfg.BuiltinPhases(),
		Source:   &phases.FileSource{Path: path},
	})
	if err != nil {
		return err
	}
	report, err := registry.Reload(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, def := range registry.AllPhases() {
		fmt.Fprintln(out, describePhase(def))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s custom phases loaded\n", color.New(color.FgGreen).Sprint(report.Loaded))
	if len(report.Skipped) == 0 {
		return nil
	}

	for _, skipped := range report.Skipped {
		fmt.Fprintf(out, "  %s #%d %s: %s\n",
			color.New(color.FgRed).Sprint("SKIPPED"), skipped.Index, skipped.ID, skipped.Reason)
	}
	return fmt.Errorf("%d custom phases skipped", len(report.Skipped))
}

func describePhase(def *entities.PhaseDefinition) string {
	state := color.New(color.FgGreen).Sprint("enabled ")
	if !def.Enabled {
		state = color.New(color.FgYellow).Sprint("disabled")
	}

	var parts []string
	for _, o := range def.Objectives {
		if o.Required {
			parts = append(parts, o.Name)
		}
	}
	mobs := make([]string, 0, len(def.KillQuotas))
	for mob, quota := range def.KillQuotas {
		mobs = append(mobs, fmt.Sprintf("%s x%d", mob, quota))
	}
	sort.Strings(mobs)
	parts = append(parts, mobs...)

	line := fmt.Sprintf("%s %-12s requires [%s]", state, def.ID, strings.Join(parts, ", "))
	if len(def.Prerequisites) > 0 {
		ids := make([]string, len(def.Prerequisites))
		for i, p := range def.Prerequisites {
			ids[i] = string(p)
		}
		line += " after " + strings.Join(ids, ", ")
	}
	if def.Dimension != "" {
		line += " gates " + color.New(color.FgCyan).Sprint(def.Dimension)
	}
	if def.Difficulty != entities.NeutralDifficulty() {
		line += fmt.Sprintf(" difficulty %.2f/%.2f/%.2f", def.Difficulty.Health, def.Difficulty.Damage, def.Difficulty.XP)
	}
	return line
}
