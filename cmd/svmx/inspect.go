package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/opencontainers/go-digest"
	"github.com/spf13/cobra"

	"github.com/svmx-ml/svmx/internal/serialization"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <artifact.svmx>",
	Short: "Summarize a .svmx artifact without converting it",
	Long: `Inspect prints the hyperparameters, class and support-vector counts,
and array shapes of a .svmx artifact, together with the artifact's
sha256 digest. The artifact's checksum is verified while reading.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		reader, err := serialization.NewReader(path)
		if err != nil {
			return err
		}
		defer reader.Close()

		model, err := reader.ReadModel()
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		fileDigest := digest.FromBytes(raw)

		header := reader.Header()

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Field", "Value"})
		t.AppendRows([]table.Row{
			{"model type", header.ModelType},
			{"format version", header.FormatVersion},
			{"created at", header.CreatedAt.Format("2006-01-02 15:04:05 MST")},
			{"kernel", model.Kernel},
			{"gamma", model.Gamma.String()},
			{"C", fmt.Sprintf("%g", model.C)},
			{"classes", model.NumClasses()},
			{"support vectors", model.NumSupportVectors()},
			{"features", model.NumFeatures()},
		})
		t.AppendSeparator()
		for _, a := range header.Arrays {
			t.AppendRow(table.Row{a.Name, fmt.Sprintf("%s %v (%d bytes)", a.DType, a.Shape, a.Size)})
		}
		t.AppendSeparator()
		t.AppendRow(table.Row{"digest", fileDigest.String()})
		t.Render()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
