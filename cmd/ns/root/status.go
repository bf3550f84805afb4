package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xafn/nextstep/internal/gamification"
	"github.com/xafn/nextstep/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak and counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, _, cleanup := openEngine(ctx)
			defer cleanup()

			rec := eng.Record()
			cur := gamification.CurrentLevel(rec)
			next := gamification.NextLevel(rec)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Job Search Progress"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d — %s", cur.Level, cur.Title)))
			fmt.Fprintln(out, ui.Muted.Render(cur.Description))

			if next != nil {
				toGo := next.XPRequired - rec.XP
				if toGo < 0 {
					toGo = 0
				}
				bar := ui.ProgressBar(rec.XP-cur.XPRequired, next.XPRequired-cur.XPRequired, 30)
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d %s %d to %q", rec.XP, bar, toGo, next.Title)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d %s (max level)", rec.XP, ui.Gold.Render("★"))))
			}
			fmt.Fprintln(out, ui.LabelValue("Progress", fmt.Sprintf("%.0f%%", gamification.Progress(rec))))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconFire+" Activity"))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d day(s), last active %s", rec.Streak, rec.LastActiveDate)))
			fmt.Fprintln(out, ui.LabelValue("Applications", rec.TotalApplications))
			fmt.Fprintln(out, ui.LabelValue("Interviews", rec.TotalInterviews))
			fmt.Fprintln(out, ui.LabelValue("Offers", rec.TotalJobs))
			fmt.Fprintln(out, "")

			unlocked := len(gamification.UnlockedAchievements(rec))
			done := len(gamification.CompletedTasks(rec))
			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Collection"))
			fmt.Fprintln(out, ui.LabelValue("Achievements", fmt.Sprintf("%d/%d unlocked", unlocked, len(rec.Achievements))))
			fmt.Fprintln(out, ui.LabelValue("Tasks", fmt.Sprintf("%d/%d completed", done, len(rec.Tasks))))
			fmt.Fprintln(out, ui.LabelValue("Earned", fmt.Sprintf("$%.2f across %d goal(s)", gamification.TotalGoalAmount(rec), len(rec.FinancialGoals))))

			return nil
		},
	}

	return cmd
}
