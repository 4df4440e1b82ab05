package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quantity-generator/internal/analyze"
)

const (
	flagDir        = "dir"
	flagDimensions = "dimensions"
)

func unitsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units [PATTERN...]",
		Short: "List the unit types declared in Go packages",
		Example: "  quantity-generator units ./units ./examples/...\n" +
			"  quantity-generator units --dimensions quantity-generator/units",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"./..."}
			}

			return runUnits(cmd.OutOrStdout(), v, args)
		},
	}

	cmd.Flags().String(flagDir, "", "directory packages are resolved from")
	cmd.Flags().Bool(flagDimensions, false, "list dimensions with their units instead of units")

	return cmd
}

func runUnits(w io.Writer, v *viper.Viper, patterns []string) error {
	a := analyze.NewAnalyzer()
	a.Dir = v.GetString(flagDir)

	report, err := a.LoadPackages(patterns...)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}

	if v.GetBool(flagDimensions) {
		return printDimensions(w, report.SortedDimensions())
	}

	return printUnits(w, report.SortedUnits())
}
