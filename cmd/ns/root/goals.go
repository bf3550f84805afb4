package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/xafn/nextstep/internal/gamification"
	"github.com/xafn/nextstep/internal/ui"
)

func newGoalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage financial goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, _, cleanup := openEngine(ctx)
			defer cleanup()

			rec := eng.Record()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconGoal, "Financial Goals"))
			if len(rec.FinancialGoals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No goals yet. Add one with `ns goals add <title> <target>`."))
				return nil
			}
			for _, g := range rec.FinancialGoals {
				bar := ui.ProgressBar(int(g.CurrentAmount), int(g.TargetAmount), 20)
				line := fmt.Sprintf("%s %s $%.2f/$%.2f %s", g.ID, g.Title, g.CurrentAmount, g.TargetAmount, bar)
				if g.Completed {
					line += " " + ui.Good.Render("done")
				}
				if g.Deadline != nil {
					line += " " + ui.Muted.Render("by "+g.Deadline.Format("2006-01-02"))
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Total earned: $%.2f", gamification.TotalGoalAmount(rec))))
			return nil
		},
	}

	cmd.AddCommand(newGoalsAddCmd(), newGoalsFundCmd(), newGoalsRmCmd())

	return cmd
}

func newGoalsAddCmd() *cobra.Command {
	var deadline string

	cmd := &cobra.Command{
		Use:   "add <title> <target>",
		Short: "Add a financial goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("title and target amount are required")
			}
			if v, err := strconv.ParseFloat(args[1], 64); err != nil || v <= 0 {
				return errors.New("target must be a positive amount")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, _, cleanup := openEngine(ctx)
			defer cleanup()

			target, _ := strconv.ParseFloat(args[1], 64)
			var due *time.Time
			if deadline != "" {
				d, err := time.ParseInLocation("2006-01-02", deadline, time.Local)
				if err != nil {
					return fmt.Errorf("invalid deadline (want YYYY-MM-DD): %w", err)
				}
				due = &d
			}

			g := eng.AddFinancialGoal(ctx, args[0], target, due)
			eng.UpdateStreak(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added goal %s: %q ($%.2f)\n", ui.Good.Render("✓"), g.ID, g.Title, g.TargetAmount)
			return nil
		},
	}

	cmd.Flags().StringVar(&deadline, "deadline", "", "Optional deadline (YYYY-MM-DD)")

	return cmd
}

func newGoalsFundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund <id> <amount>",
		Short: "Record earnings toward a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("goal id and amount are required")
			}
			if _, err := strconv.ParseFloat(args[1], 64); err != nil {
				return errors.New("amount must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, st, cleanup := openEngine(ctx)
			defer cleanup()

			amount, _ := strconv.ParseFloat(args[1], 64)
			g := eng.UpdateFinancialGoalProgress(ctx, args[0], amount)
			out := cmd.OutOrStdout()
			if g == nil {
				fmt.Fprintln(out, ui.Muted.Render("No such goal: "+args[0]))
				return nil
			}
			eng.UpdateStreak(ctx)

			fmt.Fprintf(out, "%s %q is at $%.2f/$%.2f\n", ui.Good.Render("✓"), g.Title, g.CurrentAmount, g.TargetAmount)
			if g.Completed {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" Goal reached!"))
			}

			// Earnings can trip the financial achievements.
			for _, res := range eng.CheckAchievements(ctx, loadSnapshot(ctx, st, eng.User())) {
				fmt.Fprintf(out, "%s %s (+%d XP)\n", ui.BadgeUnlocked, res.Title, res.XPReward)
			}
			return nil
		},
	}
}

func newGoalsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a financial goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, _, cleanup := openEngine(ctx)
			defer cleanup()

			if !eng.DeleteFinancialGoal(ctx, args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such goal: "+args[0]))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted goal %s\n", ui.Good.Render("✓"), args[0])
			return nil
		},
	}
}
