// Package frame reads and writes record files made of MessagePack bin blobs.
//
// A record file is a flat sequence of records with no envelope:
//
//	[bin header][payload] [bin header][payload] ...
//
// The bin header is one of
//
//	0xc4 <uint8 length>
//	0xc5 <uint16 big-endian length>
//	0xc6 <uint32 big-endian length>
//
// followed by exactly length payload bytes. This is what msgpack.pack(bytes)
// produces, so files written by other MessagePack implementations are readable
// as long as every top-level object is a bin.
//
// # Readers
//
//   - [Reader] streams records from any io.Reader through a bufio buffer. The
//     returned record is reused and valid only until the next call to Next.
//   - [SliceReader] walks an in-memory image (for example an mmap'ed file)
//     without copying. Records alias the image.
//
// Both end with io.EOF when the input is exhausted exactly at a record
// boundary. Every other failure is one of [ErrMalformedLength],
// [ErrTruncatedPayload], [ErrRecordTooLarge] or [ErrIO] and ends the sequence.
package frame
