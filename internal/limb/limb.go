// Package limb implements unchecked array operations on little-endian
// limb sequences of a single machine word type W. Nothing in this
// package validates its arguments beyond what is documented per
// function; callers (package mpi) own bounds checking and sign
// tracking. Most routines work only in caller-supplied slices; TDivQR,
// PowLow and Powm allocate working buffers of their own.
package limb

import (
	"math/bits"
	"unsafe"
)

// Word is a machine limb: an unsigned integer of 8, 16, 32 or 64 bits.
// Named types with one of these underlying kinds are accepted so callers
// can tag a limb type without an alias collision.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the bit width of W (8, 16, 32 or 64).
func Bits[W Word]() uint {
	var w W
	return uint(unsafe.Sizeof(w)) * 8
}

// Mask returns a value with exactly Bits[W]() low bits set.
func Mask[W Word]() W {
	if Bits[W]() == 64 {
		return ^W(0)
	}
	return (W(1) << Bits[W]()) - 1
}

// NormalizedSize returns the largest i <= n with s[i-1] != 0, or 0.
func NormalizedSize[W Word](s []W, n int) int {
	for n > 0 && s[n-1] == 0 {
		n--
	}
	return n
}

// Zero fills r with zero limbs.
func Zero[W Word](r []W) {
	for i := range r {
		r[i] = 0
	}
}

// Copy copies n limbs from a into r.
func Copy[W Word](r, a []W, n int) {
	copy(r[:n], a[:n])
}

// CmpN lexicographically compares two n-limb magnitudes, most
// significant limb first. Returns -1, 0, +1.
func CmpN[W Word](a, b []W, n int) int {
	for i := n - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// IsZero reports whether all n limbs of a are zero.
func IsZero[W Word](a []W, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != 0 {
			return false
		}
	}
	return true
}

func widen[W Word](v W) uint64 { return uint64(v) }

func narrow[W Word](v uint64) W { return W(v) & Mask[W]() }

// AddWW computes x + y + c over one limb, returning the sum and the
// carry out. c must be 0 or 1. Full-width limbs route through the
// math/bits carry chain; narrower limbs fit the sum in a uint64.
func AddWW[W Word](x, y, c W) (sum, carry W) {
	if Bits[W]() == 64 {
		s, cc := bits.Add64(widen(x), widen(y), widen(c))
		return W(s), W(cc)
	}
	s := widen(x) + widen(y) + widen(c)
	return narrow[W](s), W(s >> Bits[W]())
}

// SubWW computes x - y - b over one limb, returning the difference and
// the borrow out. b must be 0 or 1.
func SubWW[W Word](x, y, b W) (diff, borrow W) {
	if Bits[W]() == 64 {
		d, bb := bits.Sub64(widen(x), widen(y), widen(b))
		return W(d), W(bb)
	}
	d := widen(x) - widen(y) - widen(b)
	return narrow[W](d), W(d>>Bits[W]()) & 1
}

// MulWW computes the double-width product x*y, returned as (hi, lo)
// limbs.
func MulWW[W Word](x, y W) (hi, lo W) {
	if Bits[W]() == 64 {
		h, l := bits.Mul64(widen(x), widen(y))
		return W(h), W(l)
	}
	p := widen(x) * widen(y)
	return W(p >> Bits[W]()), narrow[W](p)
}

// AddN computes r = a + b over n limbs, returning the carry out (0 or 1).
func AddN[W Word](r, a, b []W, n int) W {
	var carry W
	for i := 0; i < n; i++ {
		r[i], carry = AddWW(a[i], b[i], carry)
	}
	return carry
}

// SubN computes r = a - b over n limbs, returning the borrow out (0 or 1).
func SubN[W Word](r, a, b []W, n int) W {
	var borrow W
	for i := 0; i < n; i++ {
		r[i], borrow = SubWW(a[i], b[i], borrow)
	}
	return borrow
}

// Add1 computes r = a + v (v a single limb) over n limbs, returning the
// final carry.
func Add1[W Word](r, a []W, n int, v W) W {
	carry := v
	for i := 0; i < n; i++ {
		r[i], carry = AddWW(a[i], carry, 0)
	}
	return carry
}

// Sub1 computes r = a - v (v a single limb) over n limbs, returning the
// final borrow.
func Sub1[W Word](r, a []W, n int, v W) W {
	borrow := v
	for i := 0; i < n; i++ {
		r[i], borrow = SubWW(a[i], borrow, 0)
	}
	return borrow
}

// Mul1 computes r = a * v over n limbs, returning the top limb carry.
func Mul1[W Word](r, a []W, n int, v W) W {
	var carry W
	for i := 0; i < n; i++ {
		hi, lo := MulWW(a[i], v)
		lo, c := AddWW(lo, carry, 0)
		r[i] = lo
		carry = hi + c
	}
	return carry
}

// AddMul1 computes r += a * v over n limbs (r must already hold n
// limbs), returning the carry out of the top limb. This is the inner
// step of schoolbook multiplication and of Montgomery REDC.
func AddMul1[W Word](r, a []W, n int, v W) W {
	var carry W
	for i := 0; i < n; i++ {
		hi, lo := MulWW(a[i], v)
		lo, c1 := AddWW(lo, r[i], 0)
		lo, c2 := AddWW(lo, carry, 0)
		r[i] = lo
		// a*v + r[i] + carry < B^2, so hi plus both carries never wraps.
		carry = hi + c1 + c2
	}
	return carry
}

// MulN computes the full (an+bn)-limb product r = a*b via schoolbook
// accumulation. r must have room for an+bn limbs. The Karatsuba/Toom
// crossover is deliberately not taken: every caller here operates on
// cryptographic-sized operands (a few thousand bits at most) where
// schoolbook is the right default; a faster kernel would slot in behind
// this same signature.
func MulN[W Word](r, a []W, an int, b []W, bn int) {
	Zero(r[:an+bn])
	for j := 0; j < bn; j++ {
		if b[j] == 0 {
			continue
		}
		carry := AddMul1(r[j:j+an], a, an, b[j])
		r[j+an], _ = AddWW(r[j+an], carry, 0)
	}
}

// LShift shifts a left by 0 < bits < Bits[W]() across n limbs into r
// (which must have room for n limbs), returning the bits shifted out of
// the top limb.
func LShift[W Word](r, a []W, n int, sh uint) W {
	if sh == 0 || sh >= Bits[W]() {
		panic("limb: LShift requires 0 < bits < word width")
	}
	var carry W
	for i := 0; i < n; i++ {
		out := a[i] >> (Bits[W]() - sh)
		r[i] = (a[i] << sh) | carry
		carry = out
	}
	return carry
}

// RShift shifts a right by 0 < bits < Bits[W]() across n limbs into r,
// returning the bits shifted out of the bottom limb (left-aligned at the
// top of the returned word).
func RShift[W Word](r, a []W, n int, sh uint) W {
	if sh == 0 || sh >= Bits[W]() {
		panic("limb: RShift requires 0 < bits < word width")
	}
	var carry W
	for i := n - 1; i >= 0; i-- {
		out := a[i] << (Bits[W]() - sh)
		r[i] = (a[i] >> sh) | carry
		carry = out
	}
	return carry
}

// PopCount returns the Hamming weight across n limbs.
func PopCount[W Word](a []W, n int) int {
	count := 0
	for i := 0; i < n; i++ {
		count += bits.OnesCount64(widen(a[i]))
	}
	return count
}

// LeadingZerosWord returns the number of leading zero bits within a
// single W-sized word (relative to Bits[W](), not 64).
func LeadingZerosWord[W Word](w W) uint {
	if w == 0 {
		return Bits[W]()
	}
	return uint(bits.LeadingZeros64(widen(w))) - (64 - Bits[W]())
}

// TrailingZerosWord returns the number of trailing zero bits within a
// single W-sized word.
func TrailingZerosWord[W Word](w W) uint {
	if w == 0 {
		return Bits[W]()
	}
	return uint(bits.TrailingZeros64(widen(w)))
}

// BitLen returns the number of significant bits across n limbs
// (0 for an all-zero operand).
func BitLen[W Word](a []W, n int) int {
	n = NormalizedSize(a, n)
	if n == 0 {
		return 0
	}
	top := a[n-1]
	return (n-1)*int(Bits[W]()) + int(Bits[W]()-LeadingZerosWord(top))
}
