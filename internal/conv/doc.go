// Package conv provides checked integer conversions for values read from
// untrusted input, such as length prefixes decoded from record files.
//
// Conversions that are provably in range (loop indices, row counts already
// bounded by a slice length) should use plain casts instead.
package conv
