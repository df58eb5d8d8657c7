package expression

import (
	"math"
	"strconv"
)

// Values at or above this magnitude are no longer contiguous integers in
// float64, so they are shown in float form.
const integerDisplayLimit = 1e15

// FormatValue renders an evaluated result for display: a finite whole
// number below the display limit prints without a decimal part, anything
// else falls back to the shortest float form.
func FormatValue(v float64) string {
	if !math.IsInf(v, 0) && v == math.Trunc(v) && math.Abs(v) < integerDisplayLimit {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
