package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/plat/internal/ui/output"
	"go.trai.ch/plat/internal/ui/style"
)

func (c *CLI) newPlatformsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List the supported platforms and their runtime versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := c.app.Platforms(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), infos)
			}

			out := output.NewForWriter(cmd.OutOrStdout())
			for _, info := range infos {
				_, _ = fmt.Fprintf(out, "%s %s\n", out.String(style.Dot).Foreground(out.Color(string(style.Iris))), out.String(info.Name).Bold())
				_, _ = fmt.Fprintf(out, "  default:  %s\n", info.Default)
				_, _ = fmt.Fprintf(out, "  versions: %s\n", strings.Join(info.Versions, ", "))
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print results as JSON")
	return cmd
}
