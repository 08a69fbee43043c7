package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kidquest/internal/ui"
)

func newChallengesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "Show active challenges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			statuses, err := svc.ActiveChallenges(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Challenges"))
			for _, ch := range statuses {
				state := ui.ProgressBar(ch.Progress, ch.Requirement, 10)
				switch {
				case ch.Claimed:
					state = ui.Muted.Render("claimed")
				case ch.Complete():
					state = ui.Good.Render("ready! run `kq challenges claim " + ch.ID + "`")
				}
				fmt.Fprintf(out, "%s %s [%s, +%d pts] %s\n",
					ch.Type.Icon(), ui.Key.Render(ch.Title), ch.Type.Label(), ch.Type.RewardPoints(), state)
				fmt.Fprintln(out, "   "+ui.Muted.Render(ch.Description))
			}
			return nil
		},
	}

	cmd.AddCommand(newChallengesClaimCmd(), newChallengesResetCmd())
	return cmd
}

func newChallengesClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <id>",
		Short: "Claim a completed challenge's reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("challenge id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ClaimChallenge(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconGift, "Challenge complete!"))
			fmt.Fprintf(out, "%s %s\n", ui.Key.Render(res.Challenge.Title), ui.Gold.Render(fmt.Sprintf("+%d points", res.RewardPoints)))
			fmt.Fprintln(out, ui.LabelValue("Total points", res.PointsTotal))
			return nil
		},
	}
}

func newChallengesResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Roll a fresh set of active challenges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ids, err := svc.ResetChallenges(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "New challenges rolled"))
			for _, id := range ids {
				fmt.Fprintln(out, "- "+id)
			}
			return nil
		},
	}
}
