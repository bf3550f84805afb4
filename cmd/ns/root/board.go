package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/xafn/nextstep/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, _, cleanup := openEngine(ctx)
			defer cleanup()

			return tui.RunBoard(ctx, eng, cmd.OutOrStdout())
		},
	}
}
