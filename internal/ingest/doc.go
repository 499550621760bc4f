// Package ingest drives records into a destination matrix one row at a time.
//
// A Driver owns no state between calls. Each run:
//
//  1. checks once that the destination has the configured row width,
//  2. applies the capacity policy of the source kind,
//  3. copies every record into the row at the write cursor, advancing the
//     cursor on success and reporting a Skip otherwise.
//
// Capacity is enforced differently per source. [Driver.RunSlice] knows the
// record count up front and refuses the whole batch before writing anything.
// [Driver.RunStream] cannot know the count, so it fails as soon as a record
// arrives while the destination is full, leaving the rows written so far.
package ingest
