package serialization

import (
	"encoding/binary"
	"math"
)

// encodeFloat64s encodes values as little-endian float64 bytes.
func encodeFloat64s(values []float64) []byte {
	buf := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

// encodeInts encodes values as little-endian int64 bytes.
func encodeInts(values []int) []byte {
	buf := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(int64(v)))
	}
	return buf
}

// decodeFloat64s decodes little-endian float64 bytes.
func decodeFloat64s(data []byte) []float64 {
	values := make([]float64, len(data)/8)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return values
}

// decodeInts decodes little-endian int64 bytes.
func decodeInts(data []byte) []int {
	values := make([]int, len(data)/8)
	for i := range values {
		values[i] = int(int64(binary.LittleEndian.Uint64(data[i*8:])))
	}
	return values
}

// flatten concatenates matrix rows into one row-major slice.
func flatten(matrix [][]float64) []float64 {
	if len(matrix) == 0 {
		return nil
	}
	flat := make([]float64, 0, len(matrix)*len(matrix[0]))
	for _, row := range matrix {
		flat = append(flat, row...)
	}
	return flat
}

// unflatten splits a row-major slice into rows×cols nested rows.
func unflatten(flat []float64, rows, cols int) [][]float64 {
	matrix := make([][]float64, rows)
	for i := range matrix {
		matrix[i] = flat[i*cols : (i+1)*cols]
	}
	return matrix
}
