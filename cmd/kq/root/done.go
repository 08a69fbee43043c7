package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kidquest/internal/engine"
	"kidquest/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done",
		Short: "Mark the pending activity as completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			act, err := svc.PendingActivity(ctx)
			if err != nil {
				return err
			}
			if act == nil {
				return engine.ErrNoPendingActivity
			}

			res, err := svc.RecordCompletion(ctx, *act)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDone, "Great job! "+res.Title))
			fmt.Fprintf(out, "%s +%d\n", ui.Key.Render("Points:"), res.BasePoints)
			for _, b := range res.Bonuses {
				fmt.Fprintf(out, "%s +%d %s\n", ui.Gold.Render("Bonus:"), b.Amount, ui.Muted.Render(b.Reason))
			}
			fmt.Fprintln(out, ui.LabelValue("Total points", res.PointsTotal))
			streak := fmt.Sprintf("%d day(s)", res.Streak)
			if res.StreakContinued {
				streak += " " + ui.IconFire
			}
			fmt.Fprintln(out, ui.LabelValue("Streak", streak))
			for _, b := range res.NewBadges {
				fmt.Fprintf(out, "%s %s %s %s\n", ui.IconTrophy, ui.BadgeUnlocked, b.Icon, b.Name)
			}
			return nil
		},
	}

	return cmd
}
