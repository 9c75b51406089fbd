package serialization

import (
	"time"

	"github.com/svmx-ml/svmx/internal/svm"
)

// Format constants.
const (
	MagicBytes      = "SVMX"
	FormatVersion   = 1
	FixedHeaderSize = 64   // Fixed header size (0x40 bytes)
	DataAlignment   = 64   // Align array data to 64 bytes
	ChecksumSize    = 32   // SHA-256 checksum size
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header
)

// Data type string constants for serialization.
const (
	DTypeFloat64 = "float64"
	DTypeInt64   = "int64"
)

// Array names in a .svmx file. Every artifact carries exactly these five.
const (
	ArraySupportVectors = "support_vectors"
	ArrayDualCoef       = "dual_coef"
	ArrayIntercept      = "intercept"
	ArraySupport        = "support"
	ArrayNSupport       = "n_support"
)

// ModelTypeSVC is the only model type the current format carries.
const ModelTypeSVC = "SVC"

// Flags for the .svmx format.
const (
	FlagHasMetadata uint32 = 1 << 0 // bit 0: custom metadata included
)

// Header is the JSON header in a .svmx file.
type Header struct {
	FormatVersion int               `json:"format_version"` // Version of the .svmx format
	SvmxVersion   string            `json:"svmx_version"`   // Version of svmx that created this file
	ModelType     string            `json:"model_type"`     // Type of model (currently always "SVC")
	CreatedAt     time.Time         `json:"created_at"`     // When the file was created
	Kernel        string            `json:"kernel"`         // Kernel function name
	Gamma         svm.Gamma         `json:"gamma"`          // Kernel coefficient
	C             float64           `json:"C"`              // Regularization strength
	Arrays        []ArrayMeta       `json:"arrays"`         // Parameter array layout
	Metadata      map[string]string `json:"metadata"`       // Custom metadata
}

// ArrayMeta describes one parameter array in the data section.
type ArrayMeta struct {
	Name   string `json:"name"`   // Array name (e.g. "support_vectors")
	DType  string `json:"dtype"`  // Element type ("float64" or "int64")
	Shape  []int  `json:"shape"`  // Array shape
	Offset int64  `json:"offset"` // Offset in bytes from start of data section
	Size   int64  `json:"size"`   // Size in bytes
}

// dtypeSize returns the byte size of one element, or 0 for unknown dtypes.
func dtypeSize(dtype string) int {
	switch dtype {
	case DTypeFloat64, DTypeInt64:
		return 8
	default:
		return 0
	}
}
