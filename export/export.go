// Package export provides the public API for converting fitted SVM
// artifacts to JSON records and back.
//
// Example usage:
//
//	import "github.com/svmx-ml/svmx/export"
//
//	// Convert an artifact to JSON and print the completion notice
//	if err := export.Run(os.Stdout, "svm_param.svmx", "svm_model.json"); err != nil {
//	    log.Fatal(err)
//	}
package export

import (
	"io"

	"github.com/svmx-ml/svmx/internal/export"
	"github.com/svmx-ml/svmx/internal/svm"
)

// Record is the exported model record: a flat snapshot of a fitted
// classifier's parameters with a fixed JSON key order.
type Record = export.Record

// LoadError indicates the input artifact could not be read.
type LoadError = export.LoadError

// WriteError indicates the output location was not writable.
type WriteError = export.WriteError

// Default paths, relative to the working directory.
const (
	DefaultArtifactPath = export.DefaultArtifactPath
	DefaultOutputPath   = export.DefaultOutputPath
)

// SuccessMessage is printed to stdout after a successful export.
const SuccessMessage = export.SuccessMessage

// Export loads the artifact at inPath and writes its exported record as
// JSON to outPath.
func Export(inPath, outPath string) error {
	return export.Export(inPath, outPath)
}

// Run performs the export and prints the completion notice to w on success.
func Run(w io.Writer, inPath, outPath string) error {
	return export.Run(w, inPath, outPath)
}

// Pack performs the inverse conversion: JSON record to .svmx artifact.
func Pack(jsonPath, artifactPath string) error {
	return export.Pack(jsonPath, artifactPath)
}

// NewRecord projects a fitted model into a Record.
func NewRecord(model *svm.Model) Record {
	return export.NewRecord(model)
}

// ReadRecord reads a previously exported JSON record from path.
func ReadRecord(path string) (Record, error) {
	return export.ReadRecord(path)
}

// LoadModel loads a fitted model from a .svmx artifact.
func LoadModel(path string) (*svm.Model, error) {
	return export.LoadModel(path)
}
