// Package fs provides file system abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: an open record file (sequential reads, stat, close)
//   - [FileSystem]: opening and stat-ing record files
//
// # Implementations
//
//   - [LocalFS]: production implementation using the standard os package
//   - [FaultyFS]: test utility injecting read, open and close failures
//
// # Usage
//
// Production code uses fs.Default (which is [LocalFS]):
//
//	f, err := fs.Default.Open(path)
//
// Tests inject [FaultyFS] to simulate a disk that fails mid-file:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.SetLimit(1024) // fail reads after 1KB
//
// Operations take no context.Context. Local reads are not interruptible at the
// syscall level; remote stores go through blobstore, which is context-aware.
package fs
