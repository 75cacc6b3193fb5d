package math3d

import (
	"math"

	"github.com/golang/geo/r3"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// Roll returns a copy of s with every element shifted forward by k places,
// wrapping around at the end, such that out[i] == s[(i-k) mod n]. Negative k
// shifts backwards.
func Roll[S ~[]E, E any](s S, k int) S {
	n := len(s)
	out := make(S, n)
	if n == 0 {
		return out
	}

	k %= n
	if k < 0 {
		k += n
	}

	copy(out[k:], s[:n-k])
	copy(out[:k], s[n-k:])
	return out
}

// Finite returns true if no component of the vector is NaN or infinite.
func Finite(v r3.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
