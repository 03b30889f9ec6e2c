package conv

import (
	"fmt"
	"math"
)

// RowID converts a row index to a bitmap member.
func RowID(i int) (uint32, error) {
	if i < 0 {
		return 0, fmt.Errorf("row index %d is negative", i)
	}
	if uint64(i) > math.MaxUint32 {
		return 0, fmt.Errorf("row index %d exceeds %d", i, uint32(math.MaxUint32))
	}
	return uint32(i), nil
}

// RowIDs converts row indices to bitmap members, failing on the first bad one.
func RowIDs(idx []int) ([]uint32, error) {
	out := make([]uint32, len(idx))
	for n, i := range idx {
		id, err := RowID(i)
		if err != nil {
			return nil, err
		}
		out[n] = id
	}
	return out, nil
}
