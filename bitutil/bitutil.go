// Package bitutil gathers the small integer manipulations needed to lay a truth table
// on a Karnaugh map: Gray codes, bit concatenation and power-of-two arithmetic.
package bitutil

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Gray returns the nth Gray code.
// Gray(n) and Gray(n+1) always differ by exactly one bit.
func Gray(n uint) uint {
	return n ^ (n >> 1)
}

// Concat returns the concatenation of high and low, low being lowWidth bits wide.
// low is expected to fit in lowWidth bits; this is not checked.
//
//	Concat(1, 2, 2) == 0b110
//	Concat(1, 2, 3) == 0b1010
func Concat(high, low uint, lowWidth int) uint {
	return (high << uint(lowWidth)) | low
}

// IsPow2 returns true iff x is a positive power of 2.
func IsPow2(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// FloorPow2 returns the largest power of 2 lower than or equal to x.
// x must be at least 1.
func FloorPow2(x int) int {
	if x < 1 {
		panic(fmt.Errorf("no power of 2 lower than %d", x))
	}
	return 1 << (bits.Len(uint(x)) - 1)
}

// BitString returns the binary representation of n, left-padded with zeros to width characters.
// n is written in full if it needs more than width bits.
func BitString(n uint, width int) string {
	s := strconv.FormatUint(uint64(n), 2)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
