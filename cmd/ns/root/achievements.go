package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xafn/nextstep/internal/gamification"
	"github.com/xafn/nextstep/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var locked bool

	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "Show the achievement board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, st, cleanup := openEngine(ctx)
			defer cleanup()

			// Re-run the rules first so achievements earned by out-of-band
			// progress (resume edits, counters) show up without a separate
			// command.
			newly := eng.CheckAchievements(ctx, loadSnapshot(ctx, st, eng.User()))

			rec := eng.Record()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			for _, a := range rec.Achievements {
				switch {
				case a.Unlocked:
					when := ""
					if a.UnlockedAt != nil {
						when = a.UnlockedAt.Format("2006-01-02")
					}
					fmt.Fprintf(out, "%s %s — %s %s\n", a.Icon, ui.Good.Render(a.Title), a.Description, ui.Muted.Render(when))
				case locked:
					fmt.Fprintf(out, "%s %s — %s (+%d XP)\n", ui.IconLocked, ui.Muted.Render(a.Title), ui.Muted.Render(a.Description), a.XPReward)
				}
			}

			unlocked := len(gamification.UnlockedAchievements(rec))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d/%d unlocked", unlocked, len(rec.Achievements))))
			for _, res := range newly {
				fmt.Fprintf(out, "%s %s (+%d XP)\n", ui.BadgeUnlocked, res.Title, res.XPReward)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&locked, "all", "a", false, "Include locked achievements")

	return cmd
}
