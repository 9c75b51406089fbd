package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svmx-ml/svmx/internal/serialization"
	"github.com/svmx-ml/svmx/internal/svm"
)

// scenarioModel returns a two-class RBF model with 10 support vectors of
// dimension 5, gamma=0.1, C=1.0.
func scenarioModel() *svm.Model {
	supportVectors := make([][]float64, 10)
	dualRow := make([]float64, 10)
	support := make([]int, 10)
	for i := range supportVectors {
		row := make([]float64, 5)
		for j := range row {
			row[j] = float64(i)*0.5 + float64(j)*0.125
		}
		supportVectors[i] = row
		dualRow[i] = 1.0 - float64(i)*0.2
		support[i] = i * 3
	}

	return &svm.Model{
		SupportVectors: supportVectors,
		DualCoef:       [][]float64{dualRow},
		Intercept:      []float64{-0.75},
		Gamma:          svm.NumericGamma(0.1),
		C:              1.0,
		Kernel:         svm.KernelRBF,
		Support:        support,
		NSupport:       []int{5, 5},
	}
}

// writeArtifact saves the model as a .svmx artifact under t.TempDir.
func writeArtifact(t *testing.T, model *svm.Model) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "svm_param.svmx")
	require.NoError(t, serialization.SaveModel(path, model))
	return path
}

// TestExportScenario covers the reference scenario: 2 classes, 10 support
// vectors of dimension 5, kernel rbf, gamma 0.1, C 1.0.
func TestExportScenario(t *testing.T) {
	model := scenarioModel()
	artifact := writeArtifact(t, model)
	outPath := filepath.Join(t.TempDir(), "svm_model.json")

	require.NoError(t, Export(artifact, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var record Record
	require.NoError(t, json.Unmarshal(data, &record))

	require.Len(t, record.SupportVectors, 10)
	for _, row := range record.SupportVectors {
		assert.Len(t, row, 5)
	}
	require.Len(t, record.NSupport, 2)
	assert.Equal(t, 10, record.NSupport[0]+record.NSupport[1])
	assert.Equal(t, svm.KernelRBF, record.Kernel)
	assert.Equal(t, svm.NumericGamma(0.1), record.Gamma)
	assert.Equal(t, 1.0, record.C)
	assert.Len(t, record.Support, 10)
}

// TestExportRoundTrip verifies every exported value equals the source
// model's attribute.
func TestExportRoundTrip(t *testing.T) {
	model := scenarioModel()
	artifact := writeArtifact(t, model)
	outPath := filepath.Join(t.TempDir(), "svm_model.json")

	require.NoError(t, Export(artifact, outPath))

	record, err := ReadRecord(outPath)
	require.NoError(t, err)

	assert.Equal(t, model.SupportVectors, record.SupportVectors)
	assert.Equal(t, model.DualCoef, record.DualCoef)
	assert.Equal(t, model.Intercept, record.Intercept)
	assert.Equal(t, model.Gamma, record.Gamma)
	assert.Equal(t, model.C, record.C)
	assert.Equal(t, model.Kernel, record.Kernel)
	assert.Equal(t, model.Support, record.Support)
	assert.Equal(t, model.NSupport, record.NSupport)
}

// TestExportKeyOrder verifies the JSON keys appear in the documented
// record order.
func TestExportKeyOrder(t *testing.T) {
	artifact := writeArtifact(t, scenarioModel())
	outPath := filepath.Join(t.TempDir(), "svm_model.json")

	require.NoError(t, Export(artifact, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	// Match the full `"key":` token; "support" alone is a prefix of
	// "support_vectors".
	order := []string{`"support_vectors":`, `"dual_coef":`, `"intercept":`, `"gamma":`, `"C":`, `"kernel":`, `"support":`, `"n_support":`}
	last := -1
	for _, key := range order {
		idx := bytes.Index(data, []byte(key))
		require.GreaterOrEqual(t, idx, 0, "missing key %s", key)
		assert.Greater(t, idx, last, "key %s out of order", key)
		last = idx
	}
}

// TestExportIdempotent verifies two exports of the same artifact produce
// byte-identical output files.
func TestExportIdempotent(t *testing.T) {
	artifact := writeArtifact(t, scenarioModel())
	dir := t.TempDir()
	out1 := filepath.Join(dir, "first.json")
	out2 := filepath.Join(dir, "second.json")

	require.NoError(t, Export(artifact, out1))
	require.NoError(t, Export(artifact, out2))

	data1, err := os.ReadFile(out1)
	require.NoError(t, err)
	data2, err := os.ReadFile(out2)
	require.NoError(t, err)
	assert.Equal(t, data1, data2)
}

// TestExportMissingInput verifies a missing artifact fails with LoadError
// before any output file is created.
func TestExportMissingInput(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "svm_model.json")

	err := Export(filepath.Join(dir, "nope.svmx"), outPath)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no output file should be created")
}

// TestExportUnwritableOutput verifies an unwritable destination fails
// with WriteError.
func TestExportUnwritableOutput(t *testing.T) {
	artifact := writeArtifact(t, scenarioModel())
	outPath := filepath.Join(t.TempDir(), "missing-dir", "svm_model.json")

	err := Export(artifact, outPath)
	require.Error(t, err)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
}

// TestRunPrintsSuccessMessage verifies the completion notice is emitted
// exactly once, after the file write.
func TestRunPrintsSuccessMessage(t *testing.T) {
	artifact := writeArtifact(t, scenarioModel())
	outPath := filepath.Join(t.TempDir(), "svm_model.json")

	var out bytes.Buffer
	require.NoError(t, Run(&out, artifact, outPath))
	assert.Equal(t, SuccessMessage+"\n", out.String())

	_, err := os.Stat(outPath)
	assert.NoError(t, err)
}

// TestRunFailureStaysSilent verifies no success message on failure.
func TestRunFailureStaysSilent(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	err := Run(&out, filepath.Join(dir, "nope.svmx"), filepath.Join(dir, "out.json"))
	require.Error(t, err)
	assert.Empty(t, out.String())
}

// TestPackRoundTrip verifies JSON → artifact → JSON reproduces the record.
func TestPackRoundTrip(t *testing.T) {
	model := scenarioModel()
	artifact := writeArtifact(t, model)
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "svm_model.json")
	repacked := filepath.Join(dir, "repacked.svmx")

	require.NoError(t, Export(artifact, jsonPath))
	require.NoError(t, Pack(jsonPath, repacked))

	loaded, err := LoadModel(repacked)
	require.NoError(t, err)
	assert.Equal(t, model, loaded)
}

// TestPackRejectsMalformedRecord verifies a structurally invalid record
// produces no artifact.
func TestPackRejectsMalformedRecord(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "bad.json")
	artifactPath := filepath.Join(dir, "bad.svmx")

	record := NewRecord(scenarioModel())
	record.NSupport = []int{3, 3} // does not sum to 10
	data, err := json.Marshal(record)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(jsonPath, data, 0o644))

	err = Pack(jsonPath, artifactPath)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)

	_, statErr := os.Stat(artifactPath)
	assert.True(t, os.IsNotExist(statErr), "no artifact should be created")
}
