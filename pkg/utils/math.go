package utils

import "math/bits"

// IsPowerOfTwo reports whether the given n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// CeilToPowerOfTwo returns n if it is a power-of-two, otherwise the next-highest power-of-two.
// Values below 2 return 2.
func CeilToPowerOfTwo(n int) int {
	if n <= 2 {
		return 2
	}

	shift := bits.Len(uint(n - 1))
	if shift >= bits.UintSize-1 {
		panic("utils: argument is too large")
	}
	return 1 << shift
}
