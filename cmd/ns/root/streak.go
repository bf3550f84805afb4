package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xafn/nextstep/internal/gamification"
	"github.com/xafn/nextstep/internal/ui"
)

func newStreakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Record activity for today's streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, _, cleanup := openEngine(ctx)
			defer cleanup()

			before := eng.Record()
			alreadyToday := before.LastActiveDate == time.Now().Format(gamification.DateLayout)
			after := eng.UpdateStreak(ctx)

			out := cmd.OutOrStdout()
			switch {
			case alreadyToday:
				fmt.Fprintf(out, "%s Already counted today. Streak: %d day(s).\n", ui.IconFire, after)
			case after == before.Streak+1:
				fmt.Fprintf(out, "%s Streak extended to %d day(s)!\n", ui.IconFire, after)
			default:
				fmt.Fprintf(out, "%s Streak reset. Back to day 1, keep going.\n", ui.IconFire)
			}
			return nil
		},
	}
}
