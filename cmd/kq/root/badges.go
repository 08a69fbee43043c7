package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kidquest/internal/ui"
)

func newBadgesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show badge progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			badges, err := svc.Badges(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Badges"))
			for _, b := range badges {
				state := ui.ProgressBar(b.Progress, b.Requirement, 10)
				if b.Unlocked {
					state = ui.BadgeUnlocked
				}
				fmt.Fprintf(out, "%s %s %s\n", b.Icon, ui.Key.Render(b.Name), state)
				fmt.Fprintln(out, "   "+ui.Muted.Render(b.Description))
			}
			return nil
		},
	}

	return cmd
}
