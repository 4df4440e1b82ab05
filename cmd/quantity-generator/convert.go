package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quantity-generator/examples/datarate"
	"quantity-generator/quantity"
	"quantity-generator/units"
)

const flagRegistry = "registry"

// registries are the runtime catalogs convert and eval can run against.
var registries = map[string]func() *quantity.Registry{
	"units":    units.Registry,
	"datarate": datarate.Registry,
}

func addRegistryFlag(cmd *cobra.Command) {
	names := slices.Sorted(maps.Keys(registries))
	cmd.Flags().StringP(flagRegistry, "r", "units",
		"registry to use, one of "+strings.Join(names, ", "))
}

func registry(v *viper.Viper) (*quantity.Registry, error) {
	name := v.GetString(flagRegistry)

	r, ok := registries[name]
	if !ok {
		return nil, fmt.Errorf("unknown registry %q", name)
	}

	return r(), nil
}

func convertCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert VALUE FROM TO",
		Short:   "Convert a value between two units of the same dimension",
		Example: "  quantity-generator convert 100 Fahrenheit Celsius",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), v, args[0], args[1], args[2])
		},
	}

	addRegistryFlag(cmd)

	return cmd
}

func runConvert(w io.Writer, v *viper.Viper, value, from, to string) error {
	r, err := registry(v)
	if err != nil {
		return err
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", value, err)
	}

	res, err := r.Convert(f, from, to)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s\n", formatFloat(res), to)

	return nil
}

func evalCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval EXPRESSION",
		Short: "Evaluate an arithmetic expression over quantities",
		Long: "Evaluate an expression such as \"5 Meters / 2 Seconds\".\n" +
			"Operands are a number followed by a unit name; + and - require\n" +
			"matching dimensions, * and / follow the declared operation graph.",
		Example: "  quantity-generator eval \"3 Feet + 1 Meters\" --to Inches\n" +
			"  quantity-generator eval \"(10 Meters / 2 Seconds) / 5 Seconds\"",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd.OutOrStdout(), v, strings.Join(args, " "))
		},
	}

	addRegistryFlag(cmd)
	cmd.Flags().String(flagTo, "", "unit to express the result in")

	return cmd
}

func runEval(w io.Writer, v *viper.Viper, expr string) error {
	r, err := registry(v)
	if err != nil {
		return err
	}

	res, err := evaluate(r, expr)
	if err != nil {
		return err
	}

	to := v.GetString(flagTo)
	if to == "" {
		fmt.Fprintln(w, r.Format(res))
		return nil
	}

	f, err := r.In(res, to)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s\n", formatFloat(f), to)

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
