package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quantity-generator/quantity"
)

const (
	flagDimension = "dimension"
	flagDepth     = "depth"
)

func inspectCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the resolved catalog of a schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.OutOrStdout(), v)
		},
	}

	addSchemaFlags(cmd)
	cmd.Flags().StringP(flagDimension, "d", "", "dump a single dimension")
	cmd.Flags().Int(flagDepth, 3, "maximum nesting depth of the dump")

	return cmd
}

func runInspect(w io.Writer, v *viper.Viper) error {
	cat, err := loadCatalog(w, v.GetString(flagSchema), v.GetBool(flagStrict))
	if err != nil {
		return err
	}

	dumper := spew.ConfigState{
		Indent:                  "  ",
		MaxDepth:                v.GetInt(flagDepth),
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
		SortKeys:                true,
	}

	fmt.Fprintln(w, cat.Summary())

	if name := v.GetString(flagDimension); name != "" {
		d, ok := cat.Dimension(name)
		if !ok {
			return fmt.Errorf("%w %s", quantity.ErrUnknownDimension, name)
		}

		dumper.Fdump(w, d)

		return nil
	}

	dumper.Fdump(w, cat.Dimensions, cat.Operations)

	return nil
}
