package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "durum",
	Short:         "Inspect compiled grammars",
	Long:          `durum renders a compiled grammar artifact in a readable BNF-style form. This feature is primarily aimed at debugging a grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
