package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kidquest/internal/engine"
	"kidquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show points, streak and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.Status(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconStar, "Your Progress"))
			fmt.Fprintln(out, ui.LabelValue("Points", st.Points))
			streak := fmt.Sprintf("%d day(s) %s", st.DailyStreak, ui.IconFire)
			if st.DailyStreak == 0 {
				streak = "none yet"
			}
			fmt.Fprintln(out, ui.LabelValue("Streak", streak))
			fmt.Fprintln(out, ui.LabelValue("Activities completed", st.Completions))
			if st.HasActivityDate {
				fmt.Fprintln(out, ui.LabelValue("Last activity", st.LastActivityDate.Format("Mon Jan 2")))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconShop+" Equipped"))
			fmt.Fprintln(out, "- "+ui.Key.Render("Theme:")+" "+orDefault(st.ActiveTheme))
			fmt.Fprintln(out, "- "+ui.Key.Render("Effect:")+" "+orDefault(st.ActiveEffect))
			fmt.Fprintln(out, "- "+ui.Key.Render("Pet costume:")+" "+orDefault(st.ActiveCostume))
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("Items owned:"), st.OwnedItems)

			act, err := svc.PendingActivity(ctx)
			if err != nil {
				return err
			}
			if act != nil {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconHourglass+" Pending"))
				fmt.Fprintf(out, "- %s %s\n", act.Title, ui.Muted.Render("(run `kq done` when finished)"))
			}
			return nil
		},
	}

	return cmd
}

func orDefault(id string) string {
	if id == "" {
		return ui.Muted.Render("default")
	}
	if item := engine.ShopItemByID(id); item != nil {
		return item.Icon + " " + item.Name
	}
	return id
}
