package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagFrom     = "from"
	flagTo       = "to"
	flagIsolated = "isolated"
)

func graphCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the operation graph as DOT, or how one dimension reaches another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGraph(cmd.OutOrStdout(), v)
		},
	}

	addSchemaFlags(cmd)
	cmd.Flags().String(flagFrom, "", "source dimension")
	cmd.Flags().String(flagTo, "", "target dimension")
	cmd.Flags().Bool(flagIsolated, false, "list the dimensions that take part in no operation")

	return cmd
}

func runGraph(w io.Writer, v *viper.Viper) error {
	cat, err := loadCatalog(io.Discard, v.GetString(flagSchema), v.GetBool(flagStrict))
	if err != nil {
		return err
	}

	gr := cat.Graph()
	from, to := v.GetString(flagFrom), v.GetString(flagTo)

	if v.GetBool(flagIsolated) {
		for _, name := range gr.Isolated() {
			fmt.Fprintln(w, name)
		}

		return nil
	}

	if from == "" && to == "" {
		dot, err := gr.DOT(cat.Package)
		if err != nil {
			return fmt.Errorf("encoding graph: %w", err)
		}

		_, err = w.Write(append(dot, '\n'))

		return err
	}

	if from == "" || to == "" {
		return errors.New("--from and --to must be given together")
	}

	ok, err := gr.Reachable(from, to)
	if err != nil {
		return err
	}

	if !ok {
		fmt.Fprintf(w, "%s is not reachable from %s\n", to, from)
		return nil
	}

	path, err := gr.Path(from, to)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, strings.Join(path, " -> "))

	for i := 1; i < len(path); i++ {
		for _, op := range gr.Steps(path[i-1], path[i]) {
			fmt.Fprintf(w, "  %s\n", op)
		}
	}

	return nil
}
