package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xafn/nextstep/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all progress for the selected user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this wipes XP, achievements, tasks and goals; re-run with --yes to confirm")
			}

			ctx := context.Background()
			eng, _, cleanup := openEngine(ctx)
			defer cleanup()

			eng.Reset(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Progress reset to defaults.\n", ui.Good.Render("✓"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
