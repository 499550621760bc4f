// Package rowcopy moves one little-endian float32 record into one matrix row.
//
// The only gate is the byte length: a record must be exactly len(row)*4 bytes.
// Values are transferred as raw bits, so NaN payloads, infinities and negative
// zero survive unchanged.
//
// # Paths
//
//   - [Copy]: bulk memmove through an unsafe byte view of the row. Used on
//     little-endian hosts, where the in-memory float32 layout equals the
//     on-disk layout. Falls back to [CopyChecked] on big-endian hosts.
//   - [CopyChecked]: element-wise decode with encoding/binary. Never touches
//     unsafe and works on any architecture.
package rowcopy
