package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/svmx-ml/svmx/internal/svm"
)

const svmxVersion = "0.1.0" // Current svmx version

// Writer writes fitted models in .svmx format.
type Writer struct {
	file   *os.File
	closed bool
}

// NewWriter creates a new .svmx file writer.
func NewWriter(path string) (*Writer, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return &Writer{file: file}, nil
}

// WriteModel writes a fitted model to the .svmx file.
func (w *Writer) WriteModel(model *svm.Model) error {
	return w.WriteModelWithMetadata(model, nil)
}

// WriteModelWithMetadata writes a fitted model with custom metadata.
//
// The model is validated before anything touches the file, so a failed
// write from an invalid model leaves an empty file, never a torn one.
func (w *Writer) WriteModelWithMetadata(model *svm.Model, metadata map[string]string) error {
	if w.closed {
		return fmt.Errorf("writer is closed")
	}
	if err := model.Validate(); err != nil {
		return err
	}
	return writeModel(w.file, model, metadata)
}

// Close closes the writer and the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// SaveModel writes a fitted model to path in .svmx format.
func SaveModel(path string, model *svm.Model) error {
	writer, err := NewWriter(path)
	if err != nil {
		return err
	}
	if err := writer.WriteModel(model); err != nil {
		_ = writer.Close() // Best effort close on error
		return err
	}
	return writer.Close()
}

// WriteTo writes a fitted model to an io.Writer in .svmx format.
// This is useful for writing to buffers or network connections.
func WriteTo(writer io.Writer, model *svm.Model, metadata map[string]string) error {
	if err := model.Validate(); err != nil {
		return err
	}
	return writeModel(writer, model, metadata)
}

// writeModel serializes an already validated model.
func writeModel(out io.Writer, model *svm.Model, metadata map[string]string) error {
	// Encode the five parameter arrays in fixed order.
	nSV := model.NumSupportVectors()
	nFeatures := model.NumFeatures()

	type section struct {
		name  string
		dtype string
		shape []int
		data  []byte
	}
	sections := []section{
		{ArraySupportVectors, DTypeFloat64, []int{nSV, nFeatures}, encodeFloat64s(flatten(model.SupportVectors))},
		{ArrayDualCoef, DTypeFloat64, []int{len(model.DualCoef), nSV}, encodeFloat64s(flatten(model.DualCoef))},
		{ArrayIntercept, DTypeFloat64, []int{len(model.Intercept)}, encodeFloat64s(model.Intercept)},
		{ArraySupport, DTypeInt64, []int{len(model.Support)}, encodeInts(model.Support)},
		{ArrayNSupport, DTypeInt64, []int{len(model.NSupport)}, encodeInts(model.NSupport)},
	}

	// Build the header and the contiguous data section.
	header := Header{
		FormatVersion: FormatVersion,
		SvmxVersion:   svmxVersion,
		ModelType:     ModelTypeSVC,
		CreatedAt:     time.Now().UTC(),
		Kernel:        model.Kernel,
		Gamma:         model.Gamma,
		C:             model.C,
		Arrays:        make([]ArrayMeta, 0, len(sections)),
		Metadata:      metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	var dataBuf []byte
	var offset int64
	for _, s := range sections {
		header.Arrays = append(header.Arrays, ArrayMeta{
			Name:   s.name,
			DType:  s.dtype,
			Shape:  s.shape,
			Offset: offset,
			Size:   int64(len(s.data)),
		})
		dataBuf = append(dataBuf, s.data...)
		offset += int64(len(s.data))
	}

	checksum := ComputeChecksum(dataBuf)

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	headerSize := uint64(len(headerJSON))
	dataSize := uint64(len(dataBuf))

	// Build the 64-byte fixed header.
	fixedHeader := make([]byte, FixedHeaderSize)

	// 0x00-0x03: Magic bytes "SVMX"
	copy(fixedHeader[0:4], MagicBytes)

	// 0x04-0x07: Version
	binary.LittleEndian.PutUint32(fixedHeader[4:8], uint32(FormatVersion))

	// 0x08-0x0B: Flags
	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixedHeader[8:12], flags)

	// 0x0C-0x0F: Reserved (0)
	// Already zero from make()

	// 0x10-0x17: Header size
	binary.LittleEndian.PutUint64(fixedHeader[16:24], headerSize)

	// 0x18-0x1F: Data size
	binary.LittleEndian.PutUint64(fixedHeader[24:32], dataSize)

	// 0x20-0x3F: SHA-256 checksum
	copy(fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := out.Write(fixedHeader); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}

	if _, err := out.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header JSON: %w", err)
	}

	// Pad so array data starts on a 64-byte boundary.
	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize, conversion is safe
	currentPos := int64(FixedHeaderSize) + int64(headerSize)
	padding := (DataAlignment - (currentPos % DataAlignment)) % DataAlignment
	if padding > 0 {
		if _, err := out.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	if _, err := out.Write(dataBuf); err != nil {
		return fmt.Errorf("failed to write array data: %w", err)
	}

	return nil
}
