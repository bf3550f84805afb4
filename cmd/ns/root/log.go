package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xafn/nextstep/internal/gamification"
	"github.com/xafn/nextstep/internal/ui"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record job-search activity",
	}

	cmd.AddCommand(
		newLogEventCmd("apply", "Record a submitted job application", ui.IconSend,
			func(ctx context.Context, eng *gamification.Engine) (string, int) {
				return "application", eng.IncrementApplications(ctx)
			}),
		newLogEventCmd("interview", "Record a completed interview", "🎭",
			func(ctx context.Context, eng *gamification.Engine) (string, int) {
				return "interview", eng.IncrementInterviews(ctx)
			}),
		newLogEventCmd("offer", "Record a job offer", ui.IconTrophy,
			func(ctx context.Context, eng *gamification.Engine) (string, int) {
				return "offer", eng.IncrementJobs(ctx)
			}),
	)

	return cmd
}

// newLogEventCmd builds one counter subcommand. Each logged event bumps
// its counter, touches the daily streak and re-runs the achievement
// rules, mirroring how the web UI reacts to the same user actions.
func newLogEventCmd(use, short, icon string, bump func(context.Context, *gamification.Engine) (string, int)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, st, cleanup := openEngine(ctx)
			defer cleanup()

			noun, count := bump(ctx, eng)
			streak := eng.UpdateStreak(ctx)
			newly := eng.CheckAchievements(ctx, loadSnapshot(ctx, st, eng.User()))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Logged %s #%d (streak: %d day(s))\n", icon, noun, count, streak)
			for _, res := range newly {
				fmt.Fprintf(out, "%s %s (+%d XP)\n", ui.BadgeUnlocked, res.Title, res.XPReward)
				if res.XP.LevelUp {
					fmt.Fprintf(out, "%s Level %d → %d\n", ui.BadgeLevelUp, res.XP.LevelBefore, res.XP.LevelAfter)
				}
			}
			return nil
		},
	}
}
