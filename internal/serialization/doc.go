// Package serialization provides the native .svmx format for saving and
// loading fitted support-vector classifiers.
//
// The .svmx format is a simple binary container for the fitted parameters
// of an SVM classifier:
//
//	Format Structure:
//	  [64-byte fixed header]
//	    0x00-0x03  Magic "SVMX"
//	    0x04-0x07  Version (uint32 LE)
//	    0x08-0x0B  Flags (uint32 LE)
//	    0x0C-0x0F  Reserved
//	    0x10-0x17  Header Size (uint64 LE)
//	    0x18-0x1F  Data Size (uint64 LE)
//	    0x20-0x3F  SHA-256 checksum of array data
//	  [Header: JSON metadata — hyperparameters and array layout]
//	  [Array data: raw little-endian values, 64-byte aligned]
//
// The JSON header carries the kernel hyperparameters (kernel, gamma, C)
// and the layout of the five parameter arrays: support_vectors, dual_coef,
// intercept, support, and n_support. Floating-point arrays are stored as
// float64, index and count arrays as int64.
//
// Example usage:
//
//	// Save a model
//	writer, err := serialization.NewWriter("svm_param.svmx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer writer.Close()
//	if err := writer.WriteModel(model); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load a model
//	model, err := serialization.LoadModel("svm_param.svmx")
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization
