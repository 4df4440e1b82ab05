package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"quantity-generator/internal/analyze"
	"quantity-generator/internal/gen"
	"quantity-generator/internal/plan"
	"quantity-generator/internal/schema"
)

const (
	flagSchema         = "schema"
	flagOut            = "out"
	flagPackage        = "package"
	flagImportPath     = "import-path"
	flagQuantityImport = "quantity-import"
	flagNoComments     = "no-comments"
	flagVerify         = "verify"
	flagStrict         = "strict"
)

func genCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a dimension package from a schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd.OutOrStdout(), v)
		},
	}

	defaults := gen.DefaultGeneratorConfig()

	addSchemaFlags(cmd)
	cmd.Flags().StringP(flagOut, "o", defaults.OutputDir, "output directory")
	cmd.Flags().String(flagPackage, "", "package name when the schema does not set one")
	cmd.Flags().String(flagImportPath, "", "import path of the generated package (defaults to the package name)")
	cmd.Flags().String(flagQuantityImport, defaults.QuantityImport, "import path of the quantity runtime package")
	cmd.Flags().Bool(flagNoComments, false, "omit doc comments from generated code")
	cmd.Flags().Bool(flagVerify, false, "type-check the output directory after writing")

	return cmd
}

func addSchemaFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagSchema, "s", "dimensions.yaml", "schema file")
	cmd.Flags().Bool(flagStrict, false, "treat resolution warnings as errors")
}

func runGen(w io.Writer, v *viper.Viper) error {
	schemaPath := v.GetString(flagSchema)

	cat, err := loadCatalog(w, schemaPath, v.GetBool(flagStrict))
	if err != nil {
		return err
	}

	config := gen.DefaultGeneratorConfig()
	config.OutputDir = v.GetString(flagOut)
	config.SchemaName = filepath.Base(schemaPath)
	config.QuantityImport = v.GetString(flagQuantityImport)
	config.GenerateComments = !v.GetBool(flagNoComments)

	if name := v.GetString(flagPackage); name != "" {
		config.PackageName = name
	}

	config.ImportPath = v.GetString(flagImportPath)

	files, err := gen.NewGenerator(config).Generate(cat)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if err := gen.WriteFiles(files, config.OutputDir); err != nil {
		return err
	}

	klog.InfoS("Generated dimension package", "schema", schemaPath, "out", config.OutputDir, "files", len(files))
	fmt.Fprintf(w, "%s\nwrote %d files to %s\n", cat.Summary(), len(files), config.OutputDir)

	if !v.GetBool(flagVerify) {
		return nil
	}

	dir, err := filepath.Abs(config.OutputDir)
	if err != nil {
		return err
	}

	if err := analyze.NewAnalyzer().Check(dir); err != nil {
		return fmt.Errorf("verifying %s: %w", config.OutputDir, err)
	}

	fmt.Fprintln(w, "verified: generated package type-checks")

	return nil
}

// loadCatalog loads and resolves a schema, printing its diagnostics to w.
func loadCatalog(w io.Writer, path string, strict bool) (*plan.Catalog, error) {
	if path == "" {
		return nil, errors.New("no schema file given")
	}

	file, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}

	config := plan.DefaultConfig()
	config.StrictMode = strict

	cat, err := plan.NewResolver(file, config).Resolve()
	if cat != nil {
		printDiagnostics(w, &cat.Diagnostics)
	}

	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	return cat, nil
}
