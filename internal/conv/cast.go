package conv

import (
	"fmt"
	"math"
)

// OverflowError reports a value that does not fit the target type.
type OverflowError struct {
	Value  string
	Target string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %s cannot be converted to %s", e.Value, e.Target)
}

// Uint32ToInt converts a decoded length to int. It only fails on 32-bit platforms.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, &OverflowError{Value: fmt.Sprint(v), Target: "int"}
	}
	return int(v), nil
}

// IntToUint32 converts a payload length to the uint32 a bin32 header can carry.
func IntToUint32(v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, &OverflowError{Value: fmt.Sprint(v), Target: "uint32"}
	}
	return uint32(v), nil
}
