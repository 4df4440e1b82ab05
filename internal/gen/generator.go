package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"path/filepath"
	"text/template"

	"quantity-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package, used when the
	// schema does not name one.
	PackageName string
	// ImportPath is the Go import path of the generated package. It keys
	// the package in quantity.Registry.Include.
	ImportPath string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// SchemaName is mentioned in the generated header, e.g. "dimensions.yaml".
	SchemaName string
	// QuantityImport is the import path of the runtime package.
	QuantityImport string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "units",
		OutputDir:        ".",
		QuantityImport:   "quantity-generator/quantity",
		GenerateComments: true,
	}
}

// Generator generates Go code from a resolved catalog.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "linear_velocity.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates Go code from a Catalog. The catalog must be free of
// errors.
func (g *Generator) Generate(cat *plan.Catalog) ([]GeneratedFile, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}

	if cat.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("catalog has errors: %w", cat.Diagnostics.Error())
	}

	b := newBuilder(g.config, cat)

	var files []GeneratedFile

	seen := make(map[string]bool)

	add := func(tmpl *template.Template, data *fileData) error {
		if seen[data.Filename] {
			return fmt.Errorf("two generated files are named %s", data.Filename)
		}

		seen[data.Filename] = true

		file, err := g.render(tmpl, data)
		if err != nil {
			return fmt.Errorf("generating %s: %w", data.Filename, err)
		}

		files = append(files, *file)

		return nil
	}

	for _, d := range cat.Dimensions {
		if err := add(dimensionTemplate, b.dimensionFile(d)); err != nil {
			return nil, err
		}
	}

	for _, data := range b.importedUnitFiles() {
		if err := add(unitsTemplate, data); err != nil {
			return nil, err
		}
	}

	if data := b.operationsFile(); data != nil {
		if err := add(operationsTemplate, data); err != nil {
			return nil, err
		}
	}

	if err := add(registryTemplate, b.registryFile()); err != nil {
		return nil, err
	}

	return files, nil
}

// render executes tmpl and formats the result.
func (g *Generator) render(tmpl *template.Template, data *fileData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: keep the unformatted code next to the output to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// packageName picks the schema's package name over the configured one.
func packageName(config GeneratorConfig, cat *plan.Catalog) string {
	if cat.Package != "" {
		return cat.Package
	}

	if config.PackageName != "" {
		return config.PackageName
	}

	return filepath.Base(config.OutputDir)
}
