package commands

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/ui/output"
	"go.trai.ch/plat/internal/ui/style"
)

func (c *CLI) newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [dir]",
		Short: "Detect the platforms used by a source directory and their runtime versions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := runOptions(cmd, dirArg(args))
			if err != nil {
				return err
			}

			results, err := c.app.Detect(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}

			out := output.NewForWriter(cmd.OutOrStdout())
			for _, r := range results {
				_, _ = fmt.Fprintln(out, detectionLine(out, style.Check, r))
			}
			return nil
		},
	}
	addRunFlags(cmd)
	return cmd
}

func detectionLine(out *termenv.Output, icon string, r domain.DetectionResult) string {
	return fmt.Sprintf("%s %s %s %s",
		out.String(icon).Foreground(out.Color(string(style.Green))),
		out.String(r.Platform).Bold(),
		r.PlatformVersion,
		out.String("("+string(r.Source)+")").Foreground(out.Color(string(style.Slate))),
	)
}
