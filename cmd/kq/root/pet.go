package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kidquest/internal/engine"
	"kidquest/internal/ui"
)

func newPetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Care for your virtual pet",
	}

	cmd.AddCommand(
		newPetAdoptCmd(),
		newPetStatusCmd(),
		newPetFeedCmd(),
		newPetPlayCmd(),
	)
	return cmd
}

func newPetAdoptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adopt <dragon|unicorn|phoenix>",
		Short: "Adopt a pet",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("pet type is required: dragon, unicorn or phoenix")
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

			species, err := svc.AdoptPet(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s You adopted a %s! %s\n", ui.IconPaw, ui.Key.Render(species.Name), species.Stages[0])
			fmt.Fprintln(out, ui.Muted.Render("Complete activities to help it grow."))
			return nil
		},
	}
}

func newPetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.PetStatus(ctx)
			if err != nil {
				return err
			}
			printPet(cmd, st)
			return nil
		},
	}
}

func newPetFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: fmt.Sprintf("Feed your pet (%d points)", engine.PetFeedCost),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.FeedPet(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Yum!\n", st.Emoji())
			printPet(cmd, st)
			return nil
		},
	}
}

func newPetPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: fmt.Sprintf("Play with your pet (%d points)", engine.PetPlayCost),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.PlayWithPet(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wheee!\n", st.Emoji())
			printPet(cmd, st)
			return nil
		},
	}
}

func printPet(cmd *cobra.Command, st *engine.PetStatusResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconPaw, st.Species.Name))
	fmt.Fprintln(out, ui.LabelValue("Looks", st.Emoji()))
	fmt.Fprintln(out, ui.LabelValue("Stage", fmt.Sprintf("%d of 3", st.Stage+1)))
	fmt.Fprintln(out, ui.LabelValue("Happiness", ui.ProgressBar(int(st.Happiness), 100, 10)))
	fmt.Fprintln(out, ui.LabelValue("Power", st.Species.SpecialPower))
}
