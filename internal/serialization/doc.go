// Package serialization stores named parameter matrices in the .symg
// checkpoint format.
//
//	Format Structure:
//	  [4 bytes: Magic "SYMG"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [32 bytes: SHA-256 of the data section]
//	  [Header: JSON metadata]
//	  [padding to a 64-byte boundary]
//	  [Matrix data: row-major little-endian elements]
//
// Matrices are written in name order so that equal state produces equal
// files. Every matrix in a file shares one element type.
//
// Example usage:
//
//	state := map[string]*tensor.Matrix[float32]{"fc.weight": w, "fc.bias": b}
//	err := serialization.Save("model.symg", state, serialization.Header{ModelType: "Linear"})
//
//	state, header, err := serialization.Load[float32]("model.symg")
package serialization
