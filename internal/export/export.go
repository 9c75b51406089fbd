// Package export converts fitted SVM artifacts into plain JSON records
// for consumption by browser or other runtime environments.
//
// The export operation is a linear sequence: load the .svmx artifact,
// project its fitted parameters into a Record, serialize the record as
// JSON, write it to disk, and print a completion notice. There are no
// retries and no partial-failure semantics; a LoadError or WriteError
// propagates to the caller unrecovered.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/svmx-ml/svmx/internal/serialization"
	"github.com/svmx-ml/svmx/internal/svm"
)

// Default paths, relative to the working directory.
const (
	DefaultArtifactPath = "svm_param.svmx"
	DefaultOutputPath   = "svm_model.json"
)

// SuccessMessage is printed to stdout after the output file is written.
const SuccessMessage = "SVM model converted to JSON format"

// Export loads the artifact at inPath and writes its exported record as
// JSON to outPath. There is no atomic-write guarantee: a failure mid-write
// may leave a partial output file behind.
func Export(inPath, outPath string) error {
	model, err := serialization.LoadModel(inPath)
	if err != nil {
		return &LoadError{Path: inPath, Err: err}
	}
	return WriteRecord(NewRecord(model), outPath)
}

// Run performs the export and prints the completion notice to w on
// success. This is the whole user-facing operation.
func Run(w io.Writer, inPath, outPath string) error {
	if err := Export(inPath, outPath); err != nil {
		return err
	}
	fmt.Fprintln(w, SuccessMessage)
	return nil
}

// WriteRecord serializes a record as compact JSON and writes it to
// outPath. The encoding is deterministic: same record, same bytes.
func WriteRecord(record Record, outPath string) error {
	data, err := json.Marshal(record)
	if err != nil {
		return &WriteError{Path: outPath, Err: err}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return &WriteError{Path: outPath, Err: err}
	}
	return nil
}

// ReadRecord reads a previously exported JSON record from path.
func ReadRecord(path string) (Record, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected here
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, &LoadError{Path: path, Err: err}
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, &LoadError{Path: path, Err: err}
	}
	return record, nil
}

// Pack performs the inverse conversion: it reads an exported JSON record
// and writes a .svmx artifact. The reassembled model is validated before
// the artifact is created.
func Pack(jsonPath, artifactPath string) error {
	record, err := ReadRecord(jsonPath)
	if err != nil {
		return err
	}

	model := record.Model()
	if err := model.Validate(); err != nil {
		return &LoadError{Path: jsonPath, Err: err}
	}

	if err := serialization.SaveModel(artifactPath, model); err != nil {
		return &WriteError{Path: artifactPath, Err: err}
	}
	return nil
}

// LoadModel loads a fitted model from a .svmx artifact, wrapping any
// failure as a LoadError.
func LoadModel(path string) (*svm.Model, error) {
	model, err := serialization.LoadModel(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return model, nil
}
