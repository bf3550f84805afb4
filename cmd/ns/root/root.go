package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xafn/nextstep/internal/ui"
)

const Version = "0.1.0"

var userFlag string

var rootCmd = &cobra.Command{
	Use:           "ns",
	Short:         "NextStep, a job-search progress tracker",
	Long:          "NextStep tracks your job search as a game: XP, levels, achievements, tasks, financial goals and daily streaks, stored locally.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User identifier (email); empty uses the shared local profile")

	rootCmd.AddCommand(
		newStatusCmd(),
		newTasksCmd(),
		newAchievementsCmd(),
		newGoalsCmd(),
		newLogCmd(),
		newResumeCmd(),
		newStreakCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
