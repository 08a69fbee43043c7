package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kidquest/internal/engine"
	"kidquest/internal/ui"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the activity journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			views, err := svc.Journal(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBook, "Activity Journal"))
			if len(views) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing here yet. Complete an activity first!"))
				return nil
			}
			for _, v := range views {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Muted.Render(v.Completion.CompletedAt.Format("Jan 2")),
					ui.Key.Render(v.Completion.Title),
					ui.Dim.Render("("+v.Completion.ID+")"))
				if v.Entry == nil {
					fmt.Fprintln(out, "   "+ui.Muted.Render("no note yet"))
					continue
				}
				line := "   " + engine.JournalRatings[v.Entry.Rating]
				if len(v.Entry.Stickers) > 0 {
					line += " " + strings.Join(v.Entry.Stickers, " ")
				}
				if v.Entry.Notes != "" {
					line += " " + v.Entry.Notes
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.AddCommand(newJournalNoteCmd())
	return cmd
}

func newJournalNoteCmd() *cobra.Command {
	var (
		rating   int
		notes    string
		stickers []string
	)

	cmd := &cobra.Command{
		Use:   "note <completion-id>",
		Short: "Rate and annotate a completed activity",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("completion id is required")
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

			if err := svc.AnnotateCompletion(ctx, args[0], rating, notes, stickers); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Journal updated %s\n", ui.IconDone, engine.JournalRatings[rating])
			return nil
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 2, "how it went, 0 (meh) to 4 (amazing)")
	cmd.Flags().StringVar(&notes, "notes", "", "a short note about the activity")
	cmd.Flags().StringSliceVar(&stickers, "sticker", nil, "stickers to attach (repeatable)")

	return cmd
}
