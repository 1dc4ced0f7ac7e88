package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kle-placer/internal/app"
)

type placeOptions struct {
	Layout      string
	Board       string
	BoardOutput string
	ReportDir   string
	DryRun      bool
	Formats     formatOptions
}

func newPlaceCommand() *cobra.Command {
	opts := placeOptions{}
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place switch and stabilizer footprints on a board from a KLE layout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlace(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Layout, "layout", "", "KLE JSON layout file")
	cmd.Flags().StringVar(&opts.Board, "board", "", "Board file")
	cmd.Flags().StringVar(&opts.BoardOutput, "board-output", "", "Write the updated board here instead of overwriting --board")
	cmd.Flags().StringVar(&opts.ReportDir, "report-dir", "", "Directory for placement and resolution reports")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Compute placements without saving the board")
	addFormatFlags(cmd, &opts.Formats)

	_ = viper.BindPFlag("layout", cmd.Flags().Lookup("layout"))
	_ = viper.BindPFlag("board", cmd.Flags().Lookup("board"))
	_ = viper.BindPFlag("board_output", cmd.Flags().Lookup("board-output"))
	_ = viper.BindPFlag("report_dir", cmd.Flags().Lookup("report-dir"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	return cmd
}

func runPlace(ctx context.Context, cmd *cobra.Command, opts placeOptions) error {
	service := newAppService()
	result, err := service.Place(ctx, app.PlaceRequest{
		LayoutPath: resolveString(cmd, opts.Layout, "layout", "layout"),
		BoardPath:  resolveString(cmd, opts.Board, "board", "board"),
		OutputPath: resolveString(cmd, opts.BoardOutput, "board_output", "board-output"),
		ReportDir:  resolveString(cmd, opts.ReportDir, "report_dir", "report-dir"),
		Formats:    resolveFormats(cmd, opts.Formats),
		DryRun:     resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		if result.Placed > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "placed %d of %d keys before failing\n", result.Placed, result.KeyCount)
		}
		return err
	}
	if result.BoardPath == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "dry run: %d keys placed, board not saved\n", result.Placed)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "placed: %d keys -> %s\n", result.Placed, result.BoardPath)
	return nil
}
