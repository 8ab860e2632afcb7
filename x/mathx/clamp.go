// Package mathx has the few generic numeric helpers shared by the ramp,
// the serial pump and the PWM bring-up.
package mathx

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Clamp pins v into [lo, hi]. Callers pass lo <= hi.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}

// Between reports whether v lies in [lo, hi].
func Between[T constraints.Ordered](v, lo, hi T) bool {
	return lo <= v && v <= hi
}
