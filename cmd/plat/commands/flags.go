package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/plat/internal/app"
	"go.trai.ch/plat/internal/core/domain"
)

// addRunFlags registers the flags shared by commands that inspect a source directory.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("platform", "p", nil, "Only consider the named platforms")
	cmd.Flags().StringArray("use", nil, "Use an explicit version, as platform=version (repeatable)")
	cmd.Flags().Bool("dynamic-install", false, "Allow install snippets for runtimes missing from the image")
	cmd.Flags().Bool("json", false, "Print results as JSON")
}

// runOptions builds the request options from the shared flags. dir is the optional positional argument.
func runOptions(cmd *cobra.Command, dir string) (app.RunOptions, error) {
	platforms, _ := cmd.Flags().GetStringSlice("platform")
	pairs, _ := cmd.Flags().GetStringArray("use")

	versions, err := domain.ParseVersionOverrides(pairs)
	if err != nil {
		return app.RunOptions{}, err
	}

	opts := app.RunOptions{
		Dir:       dir,
		Platforms: platforms,
		Versions:  versions,
	}
	if cmd.Flags().Changed("dynamic-install") {
		enabled, _ := cmd.Flags().GetBool("dynamic-install")
		opts.DynamicInstall = &enabled
	}
	return opts, nil
}

func dirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
