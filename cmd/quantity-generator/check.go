package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quantity-generator/internal/gen"
)

const flagStale = "stale"

func checkCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a schema and optionally detect stale generated files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.OutOrStdout(), v)
		},
	}

	addSchemaFlags(cmd)
	cmd.Flags().String(flagStale, "", "compare the generated files in this directory with the schema")
	cmd.Flags().String(flagImportPath, "", "import path the package was generated with")
	cmd.Flags().String(flagQuantityImport, gen.DefaultGeneratorConfig().QuantityImport, "import path of the quantity runtime package")

	return cmd
}

func runCheck(w io.Writer, v *viper.Viper) error {
	schemaPath := v.GetString(flagSchema)

	cat, err := loadCatalog(w, schemaPath, v.GetBool(flagStrict))
	if err != nil {
		return err
	}

	dir := v.GetString(flagStale)
	if dir == "" {
		fmt.Fprintf(w, "Result: VALID (%s)\n", cat.Summary())
		return nil
	}

	config := gen.DefaultGeneratorConfig()
	config.OutputDir = dir
	config.SchemaName = filepath.Base(schemaPath)
	config.ImportPath = v.GetString(flagImportPath)
	config.QuantityImport = v.GetString(flagQuantityImport)

	files, err := gen.NewGenerator(config).Generate(cat)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	stale, err := gen.Stale(files, dir)
	if err != nil {
		return err
	}

	if len(stale) > 0 {
		printStale(w, dir, stale)
		return fmt.Errorf("%d generated files in %s are stale", len(stale), dir)
	}

	fmt.Fprintf(w, "Result: UP TO DATE (%s)\n", cat.Summary())

	return nil
}
