package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kle-placer/internal/types"
)

type formatOptions struct {
	Switch     string
	Stabilizer string
	Diode      string
}

func addFormatFlags(cmd *cobra.Command, opts *formatOptions) {
	cmd.Flags().StringVar(&opts.Switch, "switch-format", types.DefaultSwitchFormat, "Switch footprint reference format")
	cmd.Flags().StringVar(&opts.Stabilizer, "stabilizer-format", types.DefaultStabilizerFormat, "Stabilizer footprint reference format (empty disables stabilizers)")
	cmd.Flags().StringVar(&opts.Diode, "diode-format", types.DefaultDiodeFormat, "Diode footprint reference format (diode placement is not implemented)")
	_ = viper.BindPFlag("switch_format", cmd.Flags().Lookup("switch-format"))
	_ = viper.BindPFlag("stabilizer_format", cmd.Flags().Lookup("stabilizer-format"))
	_ = viper.BindPFlag("diode_format", cmd.Flags().Lookup("diode-format"))
}

func resolveFormats(cmd *cobra.Command, opts formatOptions) types.ReferenceFormats {
	return types.ReferenceFormats{
		Switch:     resolveString(cmd, opts.Switch, "switch_format", "switch-format"),
		Stabilizer: resolveString(cmd, opts.Stabilizer, "stabilizer_format", "stabilizer-format"),
		Diode:      resolveString(cmd, opts.Diode, "diode_format", "diode-format"),
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
