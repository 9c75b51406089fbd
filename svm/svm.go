// Package svm exposes the fitted-parameter types for trained
// support-vector classifiers.
//
// This package wraps the internal implementation and exports a clean
// public API for working with fitted models.
//
// Example usage:
//
//	import "github.com/svmx-ml/svmx/svm"
//
//	model := &svm.Model{
//	    SupportVectors: vectors,
//	    DualCoef:       coefs,
//	    Intercept:      []float64{-0.3},
//	    Gamma:          svm.NumericGamma(0.1),
//	    C:              1.0,
//	    Kernel:         svm.KernelRBF,
//	    Support:        indices,
//	    NSupport:       []int{5, 5},
//	}
//	if err := model.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package svm

import (
	"github.com/svmx-ml/svmx/internal/svm"
)

// Model holds the fitted parameters of a trained support-vector classifier.
type Model = svm.Model

// Gamma is the kernel coefficient: a numeric value or a symbolic mode.
type Gamma = svm.Gamma

// ValidationError describes a structural problem with a fitted model.
type ValidationError = svm.ValidationError

// Kernel function names.
const (
	KernelLinear  = svm.KernelLinear
	KernelPoly    = svm.KernelPoly
	KernelRBF     = svm.KernelRBF
	KernelSigmoid = svm.KernelSigmoid
)

// Symbolic gamma modes.
const (
	GammaScale = svm.GammaScale
	GammaAuto  = svm.GammaAuto
)

// Common validation errors.
var (
	ErrNoSupportVectors = svm.ErrNoSupportVectors
	ErrRaggedMatrix     = svm.ErrRaggedMatrix
	ErrShapeMismatch    = svm.ErrShapeMismatch
	ErrBadHyperparam    = svm.ErrBadHyperparam
)

// NumericGamma returns a Gamma holding a concrete coefficient value.
func NumericGamma(v float64) Gamma {
	return svm.NumericGamma(v)
}

// SymbolicGamma returns a Gamma holding a symbolic mode ("scale" or "auto").
func SymbolicGamma(mode string) Gamma {
	return svm.SymbolicGamma(mode)
}
