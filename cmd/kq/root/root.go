package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kidquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "kq",
	Short:         "KidQuest — activity generator with points, badges and a virtual pet",
	Long:          "KidQuest suggests fun children's activities and rewards completing them with points, streaks, badges, challenges and a growing virtual pet.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newSparkCmd(),
		newDoneCmd(),
		newStatusCmd(),
		newBadgesCmd(),
		newChallengesCmd(),
		newShopCmd(),
		newJournalCmd(),
		newPetCmd(),
		newBoardCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
