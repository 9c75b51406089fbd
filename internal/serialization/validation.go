package serialization

import (
	"fmt"
	"math"
	"sort"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize = 16 * 1024 * 1024 // 16MB - maximum JSON header size
)

// requiredArrays maps each mandatory array name to its expected dtype.
var requiredArrays = map[string]string{
	ArraySupportVectors: DTypeFloat64,
	ArrayDualCoef:       DTypeFloat64,
	ArrayIntercept:      DTypeFloat64,
	ArraySupport:        DTypeInt64,
	ArrayNSupport:       DTypeInt64,
}

// ValidateArrayLayout checks array metadata against the data section:
// no unknown arrays, no dtype mismatches, no negative offsets or sizes,
// no out-of-bounds regions, no overlapping regions, and sizes consistent
// with the declared shapes. Malformed files must fail here, before any
// array data is decoded.
//
//nolint:gocyclo,cyclop // Flat sequence of independent layout checks.
func ValidateArrayLayout(arrays []ArrayMeta, dataSize int64) error {
	seen := make(map[string]bool, len(arrays))
	for i := range arrays {
		a := &arrays[i]

		wantDType, ok := requiredArrays[a.Name]
		if !ok {
			return &LayoutError{Type: "unknown_array", Array: a.Name, Details: "not part of the .svmx schema"}
		}
		if seen[a.Name] {
			return &LayoutError{Type: "duplicate_array", Array: a.Name, Details: "declared more than once"}
		}
		seen[a.Name] = true

		if a.DType != wantDType {
			return &LayoutError{
				Type:    "dtype_mismatch",
				Array:   a.Name,
				Details: fmt.Sprintf("got %q, expected %q", a.DType, wantDType),
			}
		}

		for _, d := range a.Shape {
			if d < 0 {
				return &LayoutError{Type: "negative_dimension", Array: a.Name, Details: fmt.Sprintf("shape %v", a.Shape)}
			}
		}

		if a.Offset < 0 || a.Size < 0 {
			return &LayoutError{
				Type:    "negative_offset",
				Array:   a.Name,
				Details: fmt.Sprintf("offset=%d, size=%d", a.Offset, a.Size),
			}
		}

		elems, ok := elementCount(a.Shape)
		if !ok {
			return &LayoutError{
				Type:    "shape_overflow",
				Array:   a.Name,
				Details: fmt.Sprintf("shape %v byte size overflows int64", a.Shape),
			}
		}
		wantSize := elems * int64(dtypeSize(a.DType))
		if a.Size != wantSize {
			return &LayoutError{
				Type:    "size_mismatch",
				Array:   a.Name,
				Details: fmt.Sprintf("size %d does not match shape %v (%d bytes)", a.Size, a.Shape, wantSize),
			}
		}

		if a.Offset+a.Size > dataSize {
			return &LayoutError{
				Type:    "out_of_bounds",
				Array:   a.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d: %v", a.Offset, a.Size, dataSize, ErrOutOfBounds),
			}
		}
	}

	for name := range requiredArrays {
		if !seen[name] {
			return &LayoutError{Type: "missing_array", Array: name, Details: ErrMissingArray.Error()}
		}
	}

	// Sort by offset for overlap detection.
	sorted := make([]ArrayMeta, len(arrays))
	copy(sorted, arrays)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	for i := 0; i < len(sorted)-1; i++ {
		cur, next := sorted[i], sorted[i+1]
		if cur.Offset+cur.Size > next.Offset {
			return &LayoutError{
				Type:   "offset_overlap",
				Array:  cur.Name,
				Array2: next.Name,
				Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap: %v",
					cur.Offset, cur.Offset+cur.Size, next.Offset, next.Offset+next.Size, ErrOffsetOverlap),
			}
		}
	}

	return nil
}

// elementCount returns the element count implied by shape, multiplying in
// stages so a crafted header cannot wrap the byte-size computation around
// int64. Reports false on overflow; dimensions are already known to be
// non-negative.
func elementCount(shape []int) (int64, bool) {
	n := int64(1)
	for _, d := range shape {
		if d == 0 || n == 0 {
			n = 0
			continue
		}
		if int64(d) > math.MaxInt64/8/n {
			return 0, false
		}
		n *= int64(d)
	}
	return n, true
}

// ValidateHeader checks the JSON header of a .svmx file against the size
// of the data section that follows it.
func ValidateHeader(h *Header, dataSize int64) error {
	if h.ModelType != ModelTypeSVC {
		return fmt.Errorf("%w: %q", ErrIncompatibleModel, h.ModelType)
	}
	return ValidateArrayLayout(h.Arrays, dataSize)
}
