// Package svm defines the fitted parameters of a trained support-vector
// classifier and the structural invariants they must satisfy.
//
// A Model is a pure data container: it holds the parameters a classifier
// learns during training (support vectors, dual coefficients, intercepts)
// together with the hyperparameters that shaped the fit (kernel, gamma, C).
// The package performs no training and no inference; it exists so that
// artifact readers, writers, and exporters share one well-defined shape.
package svm

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kernel function names.
const (
	KernelLinear  = "linear"
	KernelPoly    = "poly"
	KernelRBF     = "rbf"
	KernelSigmoid = "sigmoid"
)

// Symbolic gamma modes. A fitted model may carry a numeric kernel
// coefficient or one of these symbolic settings, which instruct the
// consuming runtime to derive the coefficient from the data.
const (
	GammaScale = "scale"
	GammaAuto  = "auto"
)

// Gamma is the kernel coefficient: either a concrete numeric value or a
// symbolic mode ("scale" or "auto"). The zero value is numeric 0.
type Gamma struct {
	Mode  string // GammaScale or GammaAuto when symbolic, empty when numeric
	Value float64
}

// NumericGamma returns a Gamma holding a concrete coefficient value.
func NumericGamma(v float64) Gamma {
	return Gamma{Value: v}
}

// SymbolicGamma returns a Gamma holding a symbolic mode.
func SymbolicGamma(mode string) Gamma {
	return Gamma{Mode: mode}
}

// IsNumeric reports whether the gamma carries a concrete value.
func (g Gamma) IsNumeric() bool {
	return g.Mode == ""
}

// String returns the numeric value or the symbolic mode.
func (g Gamma) String() string {
	if g.Mode != "" {
		return g.Mode
	}
	return strconv.FormatFloat(g.Value, 'g', -1, 64)
}

// MarshalJSON encodes a numeric gamma as a JSON number and a symbolic
// gamma as a JSON string.
func (g Gamma) MarshalJSON() ([]byte, error) {
	if g.Mode != "" {
		if g.Mode != GammaScale && g.Mode != GammaAuto {
			return nil, fmt.Errorf("invalid symbolic gamma %q", g.Mode)
		}
		return json.Marshal(g.Mode)
	}
	return json.Marshal(g.Value)
}

// UnmarshalJSON accepts either a JSON number or one of the symbolic modes.
func (g *Gamma) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*g = Gamma{Value: v}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("gamma must be a number or a string: %s", data)
	}
	if s != GammaScale && s != GammaAuto {
		return fmt.Errorf("invalid symbolic gamma %q", s)
	}
	*g = Gamma{Mode: s}
	return nil
}

// Model holds the fitted parameters of a trained support-vector classifier.
//
// SupportVectors is row-major: one row per support vector, one column per
// feature. DualCoef has one row per class boundary (n_classes-1 rows) and
// one column per support vector. Support holds the indices of the support
// vectors in the original training set; NSupport holds the per-class
// support-vector counts, in class order.
type Model struct {
	SupportVectors [][]float64
	DualCoef       [][]float64
	Intercept      []float64
	Gamma          Gamma
	C              float64
	Kernel         string
	Support        []int
	NSupport       []int
}

// NumSupportVectors returns the total number of support vectors.
func (m *Model) NumSupportVectors() int {
	return len(m.SupportVectors)
}

// NumFeatures returns the dimensionality of the support vectors,
// or 0 for a model with no support vectors.
func (m *Model) NumFeatures() int {
	if len(m.SupportVectors) == 0 {
		return 0
	}
	return len(m.SupportVectors[0])
}

// NumClasses returns the number of classes the model separates.
func (m *Model) NumClasses() int {
	return len(m.NSupport)
}
