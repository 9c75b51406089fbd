package export

import "github.com/svmx-ml/svmx/internal/svm"

// Record is the exported model record: a flat, immutable snapshot of a
// fitted classifier's parameters. Field order fixes the key order in the
// JSON output, which is what makes repeated exports byte-identical.
type Record struct {
	SupportVectors [][]float64 `json:"support_vectors"`
	DualCoef       [][]float64 `json:"dual_coef"`
	Intercept      []float64   `json:"intercept"`
	Gamma          svm.Gamma   `json:"gamma"`
	C              float64     `json:"C"`
	Kernel         string      `json:"kernel"`
	Support        []int       `json:"support"`
	NSupport       []int       `json:"n_support"`
}

// NewRecord projects a fitted model into a Record. The projection copies
// references only: no value is computed or transformed.
func NewRecord(model *svm.Model) Record {
	return Record{
		SupportVectors: model.SupportVectors,
		DualCoef:       model.DualCoef,
		Intercept:      model.Intercept,
		Gamma:          model.Gamma,
		C:              model.C,
		Kernel:         model.Kernel,
		Support:        model.Support,
		NSupport:       model.NSupport,
	}
}

// Model reassembles a fitted model from a record. Used by the inverse
// (pack) operation.
func (r Record) Model() *svm.Model {
	return &svm.Model{
		SupportVectors: r.SupportVectors,
		DualCoef:       r.DualCoef,
		Intercept:      r.Intercept,
		Gamma:          r.Gamma,
		C:              r.C,
		Kernel:         r.Kernel,
		Support:        r.Support,
		NSupport:       r.NSupport,
	}
}
