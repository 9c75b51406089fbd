package export_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/svmx-ml/svmx/export"
	"github.com/svmx-ml/svmx/svm"
)

// writeRecordJSON marshals a record to path.
func writeRecordJSON(path string, record export.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// TestExportAPI verifies the public surface end to end: build a record,
// pack it into an artifact, export it back, and check the notice.
func TestExportAPI(t *testing.T) {
	model := &svm.Model{
		SupportVectors: [][]float64{{0.1, 0.2}, {0.3, 0.4}},
		DualCoef:       [][]float64{{1.0, -1.0}},
		Intercept:      []float64{0.5},
		Gamma:          svm.NumericGamma(0.25),
		C:              1.0,
		Kernel:         svm.KernelRBF,
		Support:        []int{0, 4},
		NSupport:       []int{1, 1},
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "svm_model.json")
	artifactPath := filepath.Join(dir, "svm_param.svmx")

	// JSON record → artifact → JSON export.
	if err := writeRecordJSON(jsonPath, export.NewRecord(model)); err != nil {
		t.Fatalf("writing record: %v", err)
	}
	if err := export.Pack(jsonPath, artifactPath); err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	var out bytes.Buffer
	outPath := filepath.Join(dir, "exported.json")
	if err := export.Run(&out, artifactPath, outPath); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.String() != export.SuccessMessage+"\n" {
		t.Errorf("Unexpected output: %q", out.String())
	}

	record, err := export.ReadRecord(outPath)
	if err != nil {
		t.Fatalf("ReadRecord failed: %v", err)
	}
	if record.Kernel != svm.KernelRBF {
		t.Errorf("Expected kernel rbf, got %q", record.Kernel)
	}
}
