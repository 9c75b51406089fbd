package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/svmx-ml/svmx/internal/svm"
)

// Reader reads fitted models from .svmx format.
type Reader struct {
	file       *os.File
	header     Header
	flags      uint32
	dataOffset int64    // Offset where array data starts
	dataSize   int64    // Size of the data section
	checksum   [32]byte // SHA-256 checksum from the fixed header
	opts       ReaderOptions
	closed     bool
}

// ReaderOptions configures the behavior of Reader.
type ReaderOptions struct {
	SkipChecksumValidation bool // Skip checksum validation (faster but less safe)
}

// NewReader creates a new .svmx file reader with default options.
func NewReader(path string) (*Reader, error) {
	return NewReaderWithOptions(path, ReaderOptions{})
}

// NewReaderWithOptions creates a new .svmx file reader with custom options.
func NewReaderWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	reader := &Reader{file: file, opts: opts}

	if err := reader.parseHeader(); err != nil {
		_ = file.Close() // Best effort close on error
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	if err := ValidateHeader(&reader.header, reader.dataSize); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !opts.SkipChecksumValidation {
		if err := reader.verifyChecksum(); err != nil {
			_ = file.Close()
			return nil, err
		}
	}

	return reader, nil
}

// parseHeader reads and parses the fixed header and the JSON header.
func (r *Reader) parseHeader() error {
	fixedHeader := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r.file, fixedHeader); err != nil {
		return fmt.Errorf("failed to read fixed header: %w", err)
	}

	// 0x00-0x03: magic
	if string(fixedHeader[0:4]) != MagicBytes {
		return ErrInvalidMagic
	}

	// 0x04-0x07: version
	version := binary.LittleEndian.Uint32(fixedHeader[4:8])
	if version != FormatVersion {
		return fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	// 0x08-0x0B: flags
	r.flags = binary.LittleEndian.Uint32(fixedHeader[8:12])

	// 0x10-0x17: header size
	headerSize := binary.LittleEndian.Uint64(fixedHeader[16:24])
	if headerSize > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	// 0x18-0x1F: data size
	dataSize := binary.LittleEndian.Uint64(fixedHeader[24:32])

	// 0x20-0x3F: SHA-256 checksum
	copy(r.checksum[:], fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize])

	// Read header JSON (positioned right after the fixed header).
	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r.file, headerBytes); err != nil {
		return fmt.Errorf("failed to read header JSON: %w", err)
	}
	if err := json.Unmarshal(headerBytes, &r.header); err != nil {
		return fmt.Errorf("failed to parse header JSON: %w", err)
	}

	// Calculate data offset (with alignment padding).
	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize, conversion is safe
	currentPos := int64(FixedHeaderSize) + int64(headerSize)
	padding := (DataAlignment - (currentPos % DataAlignment)) % DataAlignment
	r.dataOffset = currentPos + padding

	// The declared data size must match what the file actually holds,
	// in both directions: a short file is truncated, a long one carries
	// trailing bytes the checksum would never cover.
	fileInfo, err := r.file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	//nolint:gosec // G115: dataSize was read from a bounded header field
	if got := fileInfo.Size() - r.dataOffset; got != int64(dataSize) {
		return fmt.Errorf("data section size mismatch: declared %d bytes, file holds %d", dataSize, got)
	}
	r.dataSize = int64(dataSize)

	return nil
}

// verifyChecksum reads the data section and compares it against the
// checksum stored in the fixed header.
func (r *Reader) verifyChecksum() error {
	data := make([]byte, r.dataSize)
	if _, err := r.file.ReadAt(data, r.dataOffset); err != nil {
		return fmt.Errorf("failed to read array data for checksum: %w", err)
	}
	return ValidateChecksum(ComputeChecksum(data), r.checksum)
}

// Header returns the file header.
func (r *Reader) Header() Header {
	return r.header
}

// Metadata returns the metadata map from the header.
func (r *Reader) Metadata() map[string]string {
	return r.header.Metadata
}

// ArrayInfo returns the metadata for a named array.
func (r *Reader) ArrayInfo(name string) (*ArrayMeta, error) {
	for i := range r.header.Arrays {
		if r.header.Arrays[i].Name == name {
			return &r.header.Arrays[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingArray, name)
}

// readArrayData reads the raw bytes of a named array.
func (r *Reader) readArrayData(name string) ([]byte, *ArrayMeta, error) {
	if r.closed {
		return nil, nil, fmt.Errorf("reader is closed")
	}

	meta, err := r.ArrayInfo(name)
	if err != nil {
		return nil, nil, err
	}

	data := make([]byte, meta.Size)
	if _, err := r.file.ReadAt(data, r.dataOffset+meta.Offset); err != nil {
		return nil, nil, fmt.Errorf("failed to read array %s: %w", name, err)
	}
	return data, meta, nil
}

// readFloatMatrix reads a 2D float64 array.
func (r *Reader) readFloatMatrix(name string) ([][]float64, error) {
	data, meta, err := r.readArrayData(name)
	if err != nil {
		return nil, err
	}
	if len(meta.Shape) != 2 {
		return nil, &LayoutError{Type: "shape_mismatch", Array: name, Details: fmt.Sprintf("expected 2 dimensions, got %v", meta.Shape)}
	}
	return unflatten(decodeFloat64s(data), meta.Shape[0], meta.Shape[1]), nil
}

// readFloatVector reads a 1D float64 array.
func (r *Reader) readFloatVector(name string) ([]float64, error) {
	data, meta, err := r.readArrayData(name)
	if err != nil {
		return nil, err
	}
	if len(meta.Shape) != 1 {
		return nil, &LayoutError{Type: "shape_mismatch", Array: name, Details: fmt.Sprintf("expected 1 dimension, got %v", meta.Shape)}
	}
	return decodeFloat64s(data), nil
}

// readIntVector reads a 1D int64 array.
func (r *Reader) readIntVector(name string) ([]int, error) {
	data, meta, err := r.readArrayData(name)
	if err != nil {
		return nil, err
	}
	if len(meta.Shape) != 1 {
		return nil, &LayoutError{Type: "shape_mismatch", Array: name, Details: fmt.Sprintf("expected 1 dimension, got %v", meta.Shape)}
	}
	return decodeInts(data), nil
}

// ReadModel decodes all parameter arrays into a fitted model and validates
// its structural invariants.
func (r *Reader) ReadModel() (*svm.Model, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}

	model := &svm.Model{
		Gamma:  r.header.Gamma,
		C:      r.header.C,
		Kernel: r.header.Kernel,
	}

	var err error
	if model.SupportVectors, err = r.readFloatMatrix(ArraySupportVectors); err != nil {
		return nil, err
	}
	if model.DualCoef, err = r.readFloatMatrix(ArrayDualCoef); err != nil {
		return nil, err
	}
	if model.Intercept, err = r.readFloatVector(ArrayIntercept); err != nil {
		return nil, err
	}
	if model.Support, err = r.readIntVector(ArraySupport); err != nil {
		return nil, err
	}
	if model.NSupport, err = r.readIntVector(ArrayNSupport); err != nil {
		return nil, err
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	return model, nil
}

// Close closes the reader and the underlying file.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}

// LoadModel reads a fitted model from a .svmx file at path.
func LoadModel(path string) (*svm.Model, error) {
	reader, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()
	return reader.ReadModel()
}
