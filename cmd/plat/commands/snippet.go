package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newSnippetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippet <platform> [dir]",
		Short: "Print the install snippet for a platform's runtime, if one is needed",
		Long: "Print the shell snippet that installs the runtime version a platform resolves to.\n" +
			"Nothing is printed when dynamic install is disabled or the runtime is already installed.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := runOptions(cmd, dirArg(args[1:]))
			if err != nil {
				return err
			}

			decision, err := c.app.Snippet(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), decision)
			}
			if decision.ShouldInstall {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), decision.Snippet)
			}
			return nil
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Lookup("platform").Hidden = true
	return cmd
}
