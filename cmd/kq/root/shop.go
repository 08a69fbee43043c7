package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kidquest/internal/engine"
	"kidquest/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the rewards shop",
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
			owned, err := svc.OwnedItems(ctx)
			if err != nil {
				return err
			}
			ownedSet := map[string]bool{}
			for _, item := range owned {
				ownedSet[item.ID] = true
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Rewards Shop"))
			fmt.Fprintln(out, ui.LabelValue("Your points", st.Points))
			fmt.Fprintln(out, "")
			for _, item := range engine.ShopItems() {
				price := ui.Gold.Render(fmt.Sprintf("%d pts", item.Price))
				switch {
				case ownedSet[item.ID]:
					price = ui.Good.Render("owned")
				case item.Price > st.Points:
					price = ui.Muted.Render(fmt.Sprintf("%d pts", item.Price))
				}
				fmt.Fprintf(out, "%s %s (%s) %s\n", item.Icon, ui.Key.Render(item.Name), item.ID, price)
				fmt.Fprintln(out, "   "+ui.Muted.Render(item.Description))
			}
			return nil
		},
	}

	cmd.AddCommand(newShopBuyCmd(), newShopUseCmd())
	return cmd
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a shop item with points",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item id is required")
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

			res, err := svc.Purchase(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Bought %s %s!\n", ui.IconDone, res.Item.Icon, ui.Key.Render(res.Item.Name))
			fmt.Fprintln(out, ui.LabelValue("Points left", res.PointsRemaining))
			return nil
		},
	}
}

func newShopUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <item-id>",
		Short: "Equip an owned item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item id is required")
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

			item, err := svc.UseItem(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Equipped %s %s.\n", ui.IconDone, item.Icon, ui.Key.Render(item.Name))
			return nil
		},
	}
}
