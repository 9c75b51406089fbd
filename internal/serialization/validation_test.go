package serialization

import (
	"errors"
	"testing"
)

// validLayout returns array metadata matching a 4×3 two-class model laid
// out contiguously.
func validLayout() []ArrayMeta {
	return []ArrayMeta{
		{Name: ArraySupportVectors, DType: DTypeFloat64, Shape: []int{4, 3}, Offset: 0, Size: 96},
		{Name: ArrayDualCoef, DType: DTypeFloat64, Shape: []int{1, 4}, Offset: 96, Size: 32},
		{Name: ArrayIntercept, DType: DTypeFloat64, Shape: []int{1}, Offset: 128, Size: 8},
		{Name: ArraySupport, DType: DTypeInt64, Shape: []int{4}, Offset: 136, Size: 32},
		{Name: ArrayNSupport, DType: DTypeInt64, Shape: []int{2}, Offset: 168, Size: 16},
	}
}

const validLayoutSize = 184

// TestValidateArrayLayoutAccepts verifies a well-formed layout passes.
func TestValidateArrayLayoutAccepts(t *testing.T) {
	if err := ValidateArrayLayout(validLayout(), validLayoutSize); err != nil {
		t.Fatalf("Valid layout rejected: %v", err)
	}
}

// TestValidateArrayLayoutRejects verifies each layout invariant.
func TestValidateArrayLayoutRejects(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func([]ArrayMeta) []ArrayMeta
		dataSize int64
		wantType string
	}{
		{
			name: "unknown array",
			mutate: func(a []ArrayMeta) []ArrayMeta {
				a[0].Name = "class_weight"
				return a
			},
			dataSize: validLayoutSize,
			wantType: "unknown_array",
		},
		{
			name: "duplicate array",
			mutate: func(a []ArrayMeta) []ArrayMeta {
				a[1] = a[0]
				return a
			},
			dataSize: validLayoutSize,
			wantType: "duplicate_array",
		},
		{
			name: "dtype mismatch",
			mutate: func(a []ArrayMeta) []ArrayMeta {
				a[3].DType = DTypeFloat64
				return a
			},
			dataSize: validLayoutSize,
			wantType: "dtype_mismatch",
		},
		{
			name: "negative dimension",
			mutate: func(a []ArrayMeta) []ArrayMeta {
				a[0].Shape = []int{-4, -3}
				return a
			},
			dataSize: validLayoutSize,
			wantType: "negative_dimension",
		},
		{
			name: "negative offset",
			mutate: func(a []ArrayMeta) []ArrayMeta {
				a[2].Offset = -8
				return a
			},
			dataSize: validLayoutSize,
			wantType: "negative_offset",
		},
		{
			name: "shape byte size overflows",
			mutate: func(a []ArrayMeta) []ArrayMeta {
				// Product wraps int64, which would make the declared
				// Size of 0 look consistent.
				a[0].Shape = []int{4, 1 << 61}
				a[0].Size = 0
				return a
			},
			dataSize: validLayoutSize,
			wantType: "shape_overflow",
		},
		{
			name: "size does not match shape",
			mutate: func(a []ArrayMeta) []ArrayMeta {
				a[0].Size = 64
				return a
			},
			dataSize: validLayoutSize,
			wantType: "size_mismatch",
		},
		{
			name:     "out of bounds",
			mutate:   func(a []ArrayMeta) []ArrayMeta { return a },
			dataSize: validLayoutSize - 8,
			wantType: "out_of_bounds",
		},
		{
			name: "overlapping regions",
			mutate: func(a []ArrayMeta) []ArrayMeta {
				a[1].Offset = 88
				return a
			},
			dataSize: validLayoutSize,
			wantType: "offset_overlap",
		},
		{
			name: "missing array",
			mutate: func(a []ArrayMeta) []ArrayMeta {
				return a[:4]
			},
			dataSize: validLayoutSize,
			wantType: "missing_array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArrayLayout(tt.mutate(validLayout()), tt.dataSize)
			if err == nil {
				t.Fatal("Expected layout error")
			}
			var layoutErr *LayoutError
			if !errors.As(err, &layoutErr) {
				t.Fatalf("Expected LayoutError, got: %v", err)
			}
			if layoutErr.Type != tt.wantType {
				t.Errorf("Expected error type %q, got %q (%v)", tt.wantType, layoutErr.Type, err)
			}
		})
	}
}

// TestValidateHeaderModelType verifies unknown model types are rejected.
func TestValidateHeaderModelType(t *testing.T) {
	header := &Header{ModelType: "GBM", Arrays: validLayout()}
	if err := ValidateHeader(header, validLayoutSize); err == nil {
		t.Fatal("Expected error for unknown model type")
	}

	header.ModelType = ModelTypeSVC
	if err := ValidateHeader(header, validLayoutSize); err != nil {
		t.Fatalf("Valid header rejected: %v", err)
	}
}
