package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"quantity-generator/internal/schema"
)

const flagWrite = "write"

func fmtCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Print a schema in normalized form",
		Long: "Print a schema with defaults filled in and ratios, numbers and operations\n" +
			"written in their normalized form. Comments are not preserved.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFmt(cmd.OutOrStdout(), v)
		},
	}

	cmd.Flags().StringP(flagSchema, "s", "dimensions.yaml", "schema file")
	cmd.Flags().BoolP(flagWrite, "w", false, "write the result back to the schema file")

	return cmd
}

func runFmt(w io.Writer, v *viper.Viper) error {
	path := v.GetString(flagSchema)

	f, err := schema.LoadFile(path)
	if err != nil {
		return err
	}

	if v.GetBool(flagWrite) {
		if err := schema.WriteFile(f, path); err != nil {
			return err
		}

		klog.InfoS("Rewrote schema", "path", path)

		return nil
	}

	data, err := schema.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}

	_, err = w.Write(data)

	return err
}
