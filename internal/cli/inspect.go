package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kle-placer/internal/app"
)

type inspectOptions struct {
	Layout  string
	Formats formatOptions
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show resolved keys in placement order and multilayout groups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Layout, "layout", "", "KLE JSON layout file")
	addFormatFlags(cmd, &opts.Formats)
	_ = viper.BindPFlag("layout", cmd.Flags().Lookup("layout"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		LayoutPath:   resolveString(cmd, opts.Layout, "layout", "layout"),
		SwitchFormat: resolveFormats(cmd, opts.Formats).Switch,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "layout: %s (%d keys parsed)\n", result.Name, result.Parsed)
	fmt.Fprintln(out, "keys:")
	for _, entry := range result.Keys {
		key := entry.Key
		line := fmt.Sprintf("- %s at (%g, %g) size %gx%g", entry.Reference, key.X, key.Y, key.Width, key.Height)
		if entry.Group != nil {
			line += fmt.Sprintf(" [group %d option %d]", entry.Group.Group, entry.Group.Option)
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "multilayout groups: %d\n", len(result.Resolution.Groups))
	for _, group := range result.Resolution.Groups {
		ambiguous := ""
		if group.Ambiguous {
			ambiguous = " (ambiguous)"
		}
		fmt.Fprintf(out, "- group %d: canonical option %d%s\n", group.Group, group.Canonical, ambiguous)
		for _, option := range group.Options {
			fmt.Fprintf(out, "  option %d: %d keys, offset (%g, %g)\n", option.Value, option.Count, option.Offset.DX, option.Offset.DY)
		}
	}
	return nil
}
