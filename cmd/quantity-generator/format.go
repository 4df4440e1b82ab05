package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"quantity-generator/internal/analyze"
	"quantity-generator/internal/diagnostic"
)

func printDiagnostics(w io.Writer, d *diagnostic.Diagnostics) {
	sections := []struct {
		title string
		list  []diagnostic.Diagnostic
	}{
		{"ERRORS", d.Errors},
		{"WARNINGS", d.Warnings},
		{"INFO", d.Infos},
	}

	for _, s := range sections {
		if len(s.list) == 0 {
			continue
		}

		fmt.Fprintf(w, "%s (%d):\n", s.title, len(s.list))

		for _, diag := range s.list {
			fmt.Fprintf(w, "  %s\n", diag)
		}

		fmt.Fprintln(w)
	}
}

func printStale(w io.Writer, dir string, names []string) {
	fmt.Fprintf(w, "STALE (%d) in %s:\n", len(names), dir)

	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w, "\nrun quantity-generator gen to regenerate")
}

func printUnits(w io.Writer, units []*analyze.UnitInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "DIMENSION\tUNIT\tKIND\tORIGIN")

	for _, u := range units {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.DimensionName(), u.ID.Short(), u.Kind(), u.Origin())
	}

	return tw.Flush()
}

func printDimensions(w io.Writer, dims []*analyze.DimensionInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "DIMENSION\tMARKER\tUNITS")

	for _, d := range dims {
		names := make([]string, 0, len(d.Units))
		for _, u := range d.Units {
			names = append(names, u.Short())
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, d.ID, strings.Join(names, ", "))
	}

	return tw.Flush()
}
