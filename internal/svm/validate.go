package svm

import (
	"errors"
	"fmt"
)

// Common validation errors.
var (
	ErrNoSupportVectors = errors.New("model has no support vectors")
	ErrRaggedMatrix     = errors.New("matrix rows have unequal lengths")
	ErrShapeMismatch    = errors.New("parameter shapes disagree")
	ErrBadHyperparam    = errors.New("invalid hyperparameter")
)

// ValidationError describes a structural problem with a fitted model.
type ValidationError struct {
	Field   string // Parameter involved (e.g. "dual_coef")
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid model: %s: %s", e.Field, e.Details)
}

// Validate checks the structural invariants of a fitted model:
// a rectangular support-vector matrix, dual coefficients with one row per
// class boundary and one column per support vector, per-class counts that
// sum to the total number of support vectors, and sane hyperparameters.
//
//nolint:gocyclo,cyclop // Each invariant is one flat check; splitting them obscures the contract.
func (m *Model) Validate() error {
	nSV := len(m.SupportVectors)
	if nSV == 0 {
		return ErrNoSupportVectors
	}

	nFeatures := len(m.SupportVectors[0])
	if nFeatures == 0 {
		return &ValidationError{Field: "support_vectors", Details: "zero-length feature vectors"}
	}
	for i, row := range m.SupportVectors {
		if len(row) != nFeatures {
			return &ValidationError{
				Field:   "support_vectors",
				Details: fmt.Sprintf("row %d has %d features, expected %d: %v", i, len(row), nFeatures, ErrRaggedMatrix),
			}
		}
	}

	nClasses := len(m.NSupport)
	if nClasses == 0 {
		return &ValidationError{Field: "n_support", Details: "no classes"}
	}

	total := 0
	for i, n := range m.NSupport {
		if n < 0 {
			return &ValidationError{Field: "n_support", Details: fmt.Sprintf("class %d has negative count %d", i, n)}
		}
		total += n
	}
	if total != nSV {
		return &ValidationError{
			Field:   "n_support",
			Details: fmt.Sprintf("per-class counts sum to %d, have %d support vectors: %v", total, nSV, ErrShapeMismatch),
		}
	}

	if len(m.Support) != nSV {
		return &ValidationError{
			Field:   "support",
			Details: fmt.Sprintf("%d indices for %d support vectors: %v", len(m.Support), nSV, ErrShapeMismatch),
		}
	}
	for i, idx := range m.Support {
		if idx < 0 {
			return &ValidationError{Field: "support", Details: fmt.Sprintf("index %d is negative (%d)", i, idx)}
		}
	}

	// One row per class boundary; a one-class model still carries one row.
	wantRows := nClasses - 1
	if wantRows < 1 {
		wantRows = 1
	}
	if len(m.DualCoef) != wantRows {
		return &ValidationError{
			Field:   "dual_coef",
			Details: fmt.Sprintf("%d rows for %d classes, expected %d: %v", len(m.DualCoef), nClasses, wantRows, ErrShapeMismatch),
		}
	}
	for i, row := range m.DualCoef {
		if len(row) != nSV {
			return &ValidationError{
				Field:   "dual_coef",
				Details: fmt.Sprintf("row %d has %d coefficients for %d support vectors: %v", i, len(row), nSV, ErrShapeMismatch),
			}
		}
	}

	// One intercept per pairwise decision function.
	wantIntercepts := nClasses * (nClasses - 1) / 2
	if wantIntercepts < 1 {
		wantIntercepts = 1
	}
	if len(m.Intercept) != wantIntercepts {
		return &ValidationError{
			Field:   "intercept",
			Details: fmt.Sprintf("%d terms for %d classes, expected %d: %v", len(m.Intercept), nClasses, wantIntercepts, ErrShapeMismatch),
		}
	}

	if m.Kernel == "" {
		return &ValidationError{Field: "kernel", Details: fmt.Sprintf("empty kernel name: %v", ErrBadHyperparam)}
	}
	if m.C <= 0 {
		return &ValidationError{Field: "C", Details: fmt.Sprintf("must be positive, got %g: %v", m.C, ErrBadHyperparam)}
	}
	if m.Gamma.Mode != "" && m.Gamma.Mode != GammaScale && m.Gamma.Mode != GammaAuto {
		return &ValidationError{Field: "gamma", Details: fmt.Sprintf("unknown symbolic mode %q: %v", m.Gamma.Mode, ErrBadHyperparam)}
	}
	if m.Gamma.IsNumeric() && m.Gamma.Value <= 0 {
		return &ValidationError{Field: "gamma", Details: fmt.Sprintf("must be positive, got %g: %v", m.Gamma.Value, ErrBadHyperparam)}
	}

	return nil
}
