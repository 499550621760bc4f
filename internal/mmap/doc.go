// Package mmap maps record files read-only into memory.
//
// The mapped image is handed to a zero-copy record reader, so every record is
// a sub-slice of the mapping and the only copy is the one into the destination
// matrix. Files are scanned front to back once; [Open] advises the kernel of a
// sequential access pattern.
//
// # Platform Support
//
//   - Unix: mmap(2) with madvise(2)
//   - Windows: CreateFileMapping/MapViewOfFile (advice is a no-op)
//
// Bytes must not be used after Close returns.
package mmap
