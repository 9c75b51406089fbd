package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/svmx-ml/svmx/internal/export"
)

var packCmd = &cobra.Command{
	Use:   "pack <record.json> <artifact.svmx>",
	Short: "Build a .svmx artifact from an exported JSON record",
	Long: `Pack performs the inverse of export: it reads a JSON model record and
writes a .svmx binary artifact. The record is validated before the
artifact is created, so a malformed record produces no output file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := export.Pack(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Packed %s into %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
}
