package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

const filePerm = 0o644

// LoadFile loads and parses a YAML schema file and, recursively, the schema
// files it imports.
func LoadFile(path string) (*File, error) {
	return loadFile(path, nil)
}

func loadFile(path string, stack []string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema path %s: %w", path, err)
	}

	if slices.Contains(stack, abs) {
		return nil, fmt.Errorf("import cycle: %s imports itself through %v", abs, stack)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Path = path
	stack = append(stack, abs)

	for i := range f.Imports {
		imp := &f.Imports[i]
		if imp.Schema == "" {
			return nil, fmt.Errorf("%s: import %s has no schema file", path, imp.Path)
		}

		target := imp.Schema
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}

		imp.File, err = loadFile(target, stack)
		if err != nil {
			return nil, fmt.Errorf("loading import %s: %w", imp.Path, err)
		}
	}

	return f, nil
}

// Parse parses YAML data into a File. Imports are not loaded.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	one := MustNumber("1")

	for i := range f.Dimensions {
		d := &f.Dimensions[i]
		for j := range d.Units {
			if a := d.Units[j].Affine; a != nil && a.Scale.IsZero() {
				a.Scale = one
			}
		}
	}

	for i := range f.Units {
		if a := f.Units[i].Affine; a != nil && a.Scale.IsZero() {
			a.Scale = one
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}

// Dimension returns the dimension with the given name declared in f.
func (f *File) Dimension(name string) (*DimensionDef, bool) {
	for i := range f.Dimensions {
		if f.Dimensions[i].Name == name {
			return &f.Dimensions[i], true
		}
	}

	return nil, false
}
