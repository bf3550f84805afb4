package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xafn/nextstep/internal/gamification"
	"github.com/xafn/nextstep/internal/ui"
)

func newTasksCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List onboarding tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, _, cleanup := openEngine(ctx)
			defer cleanup()

			rec := eng.Record()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTask, "Tasks"))
			for _, t := range rec.Tasks {
				if t.Completed {
					if all {
						fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render("✓"), ui.Muted.Render(t.Title), ui.Muted.Render(fmt.Sprintf("(+%d XP)", t.XPReward)))
					}
					continue
				}
				fmt.Fprintf(out, "%s %s — %s (+%d XP, %s)\n", ui.Warn.Render("•"), t.ID, t.Title, t.XPReward, ui.PriorityText(string(t.Priority)))
			}
			done := len(gamification.CompletedTasks(rec))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d/%d completed", done, len(rec.Tasks))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")
	cmd.AddCommand(newTasksDoCmd())

	return cmd
}

func newTasksDoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, _, cleanup := openEngine(ctx)
			defer cleanup()

			res := eng.CompleteTask(ctx, args[0])
			out := cmd.OutOrStdout()
			if res == nil {
				fmt.Fprintln(out, ui.Muted.Render("No such pending task: "+args[0]))
				return nil
			}
			eng.UpdateStreak(ctx)

			fmt.Fprintf(out, "%s Completed %q: +%d XP\n", ui.Good.Render("✓"), res.Title, res.XPReward)
			if res.XP.LevelUp {
				fmt.Fprintf(out, "%s Level %d → %d\n", ui.BadgeLevelUp, res.XP.LevelBefore, res.XP.LevelAfter)
			}
			return nil
		},
	}
}
