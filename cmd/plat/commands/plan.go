package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/plat/internal/ui/output"
	"go.trai.ch/plat/internal/ui/style"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [dir]",
		Short: "Detect platforms and decide which runtimes must be installed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := runOptions(cmd, dirArg(args))
			if err != nil {
				return err
			}

			plans, err := c.app.Plan(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), plans)
			}

			out := output.NewForWriter(cmd.OutOrStdout())
			for _, p := range plans {
				line := detectionLine(out, style.Check, p.Detection)
				if p.Install.ShouldInstall {
					line += " " + out.String(style.Tilde+" install required").Foreground(out.Color(string(style.Yellow))).String()
				}
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	addRunFlags(cmd)
	return cmd
}
