package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xafn/nextstep/internal/resume"
	"github.com/xafn/nextstep/internal/ui"
)

func newResumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Inspect the resume feeding achievement checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, st, cleanup := openEngine(ctx)
			defer cleanup()

			data, err := resume.Load(ctx, st, eng.User())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" "+err.Error()))
			}
			snap := data.Snapshot()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("📝", "Resume"))
			name := "(none)"
			if snap.HasName {
				name = data.PersonalInfo.FirstName + " " + data.PersonalInfo.LastName
			}
			fmt.Fprintln(out, ui.LabelValue("Name", name))
			fmt.Fprintln(out, ui.LabelValue("Skills", snap.SkillCount))
			fmt.Fprintln(out, ui.LabelValue("Experience entries", snap.ExperienceCount))
			fmt.Fprintln(out, ui.LabelValue("Completion", fmt.Sprintf("%d%% %s", snap.Completion, ui.ProgressBar(snap.Completion, 100, 20))))
			return nil
		},
	}

	cmd.AddCommand(newResumeSampleCmd())

	return cmd
}

func newResumeSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Seed the demo resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, st, cleanup := openEngine(ctx)
			defer cleanup()

			if err := resume.Save(ctx, st, eng.User(), resume.Sample()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Sample resume saved.\n", ui.Good.Render("✓"))

			for _, res := range eng.CheckAchievements(ctx, loadSnapshot(ctx, st, eng.User())) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (+%d XP)\n", ui.BadgeUnlocked, res.Title, res.XPReward)
			}
			return nil
		},
	}
}
