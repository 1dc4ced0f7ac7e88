package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kle-placer/internal/app"
)

type validateOptions struct {
	Layout  string
	Formats formatOptions
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a KLE layout and reference formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Layout, "layout", "", "KLE JSON layout file")
	addFormatFlags(cmd, &opts.Formats)
	_ = viper.BindPFlag("layout", cmd.Flags().Lookup("layout"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		LayoutPath: resolveString(cmd, opts.Layout, "layout", "layout"),
		Formats:    resolveFormats(cmd, opts.Formats),
	})
	if err != nil {
		return err
	}
	name := result.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "validated: %s, %d keys, %d multilayout groups\n", name, result.KeyCount, result.GroupCount)
	return nil
}
