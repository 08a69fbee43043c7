package root

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kidquest/internal/config"
	"kidquest/internal/engine"
	"kidquest/internal/generator"
	"kidquest/internal/logging"
	"kidquest/internal/ui"
)

func newSparkCmd() *cobra.Command {
	var (
		category string
		timeReq  string
		energy   string
		age      string
		offline  bool
	)

	cmd := &cobra.Command{
		Use:   "spark",
		Short: "Generate a new activity suggestion",
		Long:  "Generate an activity matching the given filters and keep it as the pending activity until you mark it done.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if timeReq != "" {
				if _, err := engine.ParseTimeRequired(timeReq); err != nil {
					return err
				}
			}
			if energy != "" {
				if _, err := engine.ParseEnergyLevel(energy); err != nil {
					return err
				}
			}

			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			src, err := newActivitySource(ctx, cfg, offline)
			if err != nil {
				return err
			}

			act, err := src.Generate(ctx, generator.Filters{
				Category:     category,
				TimeRequired: timeReq,
				EnergyLevel:  energy,
				AgeRange:     age,
			})
			if err != nil {
				return err
			}
			if err := svc.SetPendingActivity(ctx, act); err != nil {
				return err
			}

			printActivity(cmd.OutOrStdout(), act)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Run `kq done` once you finish it!"))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "activity category: "+strings.Join(engine.Categories, ", "))
	cmd.Flags().StringVar(&timeReq, "time", "", "time required: short, medium or long")
	cmd.Flags().StringVar(&energy, "energy", "", "energy level: low, medium or high")
	cmd.Flags().StringVar(&age, "age", "", "age range (e.g. 5-7)")
	cmd.Flags().BoolVar(&offline, "offline", false, "pick from the built-in catalog instead of calling the API")

	return cmd
}

// newActivitySource picks Gemini when a key is configured, the built-in
// catalog otherwise.
func newActivitySource(ctx context.Context, cfg config.Config, offline bool) (generator.Source, error) {
	if offline || cfg.GeminiAPIKey == "" {
		return generator.NewCatalog(rand.New(rand.NewSource(time.Now().UnixNano()))), nil
	}
	log, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, err
	}
	return generator.NewGemini(ctx, cfg.GeminiAPIKey, cfg.Model, log)
}

func printActivity(w io.Writer, act engine.Activity) {
	fmt.Fprintln(w, ui.Heading(ui.IconSpark, act.Title))
	fmt.Fprintln(w, ui.LabelValue("Category", act.Category))
	fmt.Fprintln(w, ui.LabelValue("Time", act.TimeRequired))
	fmt.Fprintln(w, ui.LabelValue("Energy", act.EnergyLevel))
	if act.AgeRange != "" {
		fmt.Fprintln(w, ui.LabelValue("Ages", act.AgeRange))
	}
	where := "outdoors"
	if act.Indoor {
		where = "indoors"
	}
	fmt.Fprintln(w, ui.LabelValue("Where", where))
	if len(act.Resources) > 0 {
		fmt.Fprintln(w, ui.LabelValue("You need", strings.Join(act.Resources, ", ")))
	}
	fmt.Fprintln(w, "")
	if act.Description != "" {
		fmt.Fprintln(w, act.Description)
		fmt.Fprintln(w, "")
	}
	if len(act.Instructions) > 0 {
		fmt.Fprintln(w, ui.H2.Render("Steps"))
		for i, step := range act.Instructions {
			fmt.Fprintf(w, "%d. %s\n", i+1, step)
		}
		fmt.Fprintln(w, "")
	}
	if act.FunFact != "" {
		fmt.Fprintln(w, ui.Gold.Render("💡 Fun fact: ")+act.FunFact)
		fmt.Fprintln(w, "")
	}
}
