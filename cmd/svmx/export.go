package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/svmx-ml/svmx/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a .svmx artifact as a JSON model record",
	Long: `Export loads a fitted classifier from a .svmx artifact and writes its
parameters to a JSON file: support_vectors, dual_coef, intercept, gamma,
C, kernel, support, and n_support.

With no flags, reads svm_param.svmx and writes svm_model.json in the
working directory. Defaults can be overridden in svmx.yaml or with
SVMX_INPUT / SVMX_OUTPUT environment variables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("input")
		out, _ := cmd.Flags().GetString("output")
		if !cmd.Flags().Changed("input") {
			in = viper.GetString("input")
		}
		if !cmd.Flags().Changed("output") {
			out = viper.GetString("output")
		}
		return export.Run(cmd.OutOrStdout(), in, out)
	},
}

func init() {
	exportCmd.Flags().StringP("input", "i", export.DefaultArtifactPath, "path to the .svmx artifact")
	exportCmd.Flags().StringP("output", "o", export.DefaultOutputPath, "path for the JSON output")

	rootCmd.AddCommand(exportCmd)
}
