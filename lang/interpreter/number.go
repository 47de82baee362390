package interpreter

import (
	"math"
	"strconv"
	"strings"
)

// Number is a Lox number, always a float64: Lox has no separate integer
// type.
type Number float64

func (Number) Type() string { return "number" }

// String formats a number the way Lox's printer does: integral values print
// without a trailing ".0", the rest use Go's shortest round-tripping decimal
// representation. Division by zero can produce ±Inf or NaN, printed as Go
// spells them.
func (n Number) String() string {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if f == float64(int64(f)) && !strings.ContainsAny(strconv.FormatFloat(f, 'g', -1, 64), "eE") {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
