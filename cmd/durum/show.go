package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	spec "github.com/nihei9/durum/spec/grammar"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print a compiled grammar in BNF form",
		Example: `  durum show grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := readCompiledGrammar(args[0])
	if err != nil {
		return err
	}

	err = spec.WriteBNF(os.Stdout, g)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout)

	return nil
}

func readCompiledGrammar(path string) (*spec.CompiledGrammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the compiled grammar %s: %w", path, err)
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	g := &spec.CompiledGrammar{}
	err = json.Unmarshal(d, g)
	if err != nil {
		return nil, err
	}

	return g, nil
}
