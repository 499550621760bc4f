package ingest

import "fmt"

// ShapeError is returned when the destination row width does not match.
type ShapeError struct {
	Expected int
	Actual   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("destination has %d columns, does not match %d", e.Actual, e.Expected)
}

// TooManyRecordsError is returned by RunSlice when the batch cannot fit.
type TooManyRecordsError struct {
	Records  int
	Capacity int
}

func (e *TooManyRecordsError) Error() string {
	return fmt.Sprintf("too many records: %d exceeds capacity %d", e.Records, e.Capacity)
}

// CapacityError is returned by RunStream when a record arrives at a full destination.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: destination holds %d rows", e.Capacity)
}
