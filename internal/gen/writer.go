package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"k8s.io/klog/v2"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// generatedMarker starts the first line of every file this package writes.
const generatedMarker = "// Code generated by quantity-generator"

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		klog.V(2).InfoS("Wrote generated file", "path", outputPath, "bytes", len(file.Content))
	}

	return nil
}

// Stale compares files with the content of dir. It returns the names of
// files that are missing or differ, followed by the generated files found
// in dir that files no longer contains.
func Stale(files []GeneratedFile, dir string) ([]string, error) {
	var stale []string

	want := make(map[string]bool, len(files))

	for _, file := range files {
		want[file.Filename] = true

		current, err := os.ReadFile(filepath.Join(dir, file.Filename))

		switch {
		case errors.Is(err, fs.ErrNotExist):
			klog.V(2).InfoS("Generated file is missing", "file", file.Filename)
			stale = append(stale, file.Filename)
		case err != nil:
			return nil, fmt.Errorf("reading %s: %w", file.Filename, err)
		case !bytes.Equal(current, file.Content):
			klog.V(2).InfoS("Generated file differs", "file", file.Filename)
			stale = append(stale, file.Filename)
		}
	}

	orphans, err := generatedFiles(dir)
	if err != nil {
		return nil, err
	}

	for _, name := range orphans {
		if !want[name] {
			klog.V(2).InfoS("Generated file is no longer produced", "file", name)
			stale = append(stale, name)
		}
	}

	return stale, nil
}

// generatedFiles lists the .go files of dir carrying the generated header.
func generatedFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var res []string

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") || strings.HasSuffix(e.Name(), ".unformatted.go") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}

		if bytes.HasPrefix(content, []byte(generatedMarker)) {
			res = append(res, e.Name())
		}
	}

	slices.Sort(res)

	return res, nil
}
