// Package eightbytes provides SIMD-like operations on eight 8-bit lanes
// packed into a single 64-bit word, implemented entirely with ordinary
// scalar instructions ("SIMD within a register"). It needs no assembly and
// no hardware vector unit, so the same code runs on every target while
// still processing eight bytes per operation.
//
// The two core types are [U8x8], a vector of eight uint8 lanes, and
// [Mask8x8], a vector of eight boolean lanes produced by comparisons.
// [SplitWords] reinterprets a byte slice as a run of vectors so whole
// buffers can be processed eight bytes at a time.
package eightbytes

import "encoding/binary"

// U8x8 is a vector of eight uint8 values packed into a uint64, where every
// operation applies to all eight lanes at once. Lane i occupies byte i of
// the word's in-memory representation, which follows host byte order: raw
// words are not portable between hosts of differing byte order, but lane
// semantics are identical everywhere.
//
// U8x8 is an immutable value type. The zero value has all lanes set to zero.
type U8x8 struct {
	n uint64
}

const (
	// laneOnes has every lane set to 1.
	laneOnes = 0x0101010101010101

	// low7Bits has all but the most significant bit set in every lane.
	// Masking an operand with it leaves a spare bit per lane to absorb
	// the carry of an addition or subtraction, so the operation cannot
	// leak into the neighboring lane.
	low7Bits = 0x7f7f7f7f7f7f7f7f

	// high1Bit is the complement of low7Bits: only the most significant
	// bit of every lane. Used to reconstruct the masked-out remnant of a
	// wrapping operation.
	high1Bit = 0x8080808080808080
)

// FromBytes packs the eight bytes of b into a vector, one per lane.
func FromBytes(b [8]byte) U8x8 {
	return U8x8{binary.NativeEndian.Uint64(b[:])}
}

// Splat returns a vector with v in all eight lanes.
func Splat(v byte) U8x8 {
	return U8x8{uint64(v) * laneOnes}
}

// Bytes unpacks the vector into an array of eight bytes, one per lane.
func (v U8x8) Bytes() [8]byte {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], v.n)
	return b
}

// Complement inverts every bit of every lane.
func (v U8x8) Complement() U8x8 {
	return U8x8{^v.n}
}

// And computes the bitwise AND of corresponding lanes.
func (v U8x8) And(o U8x8) U8x8 {
	return U8x8{v.n & o.n}
}

// Or computes the bitwise OR of corresponding lanes.
func (v U8x8) Or(o U8x8) U8x8 {
	return U8x8{v.n | o.n}
}

// Xor computes the bitwise XOR of corresponding lanes.
func (v U8x8) Xor(o U8x8) U8x8 {
	return U8x8{v.n ^ o.n}
}

// WrappingAdd adds corresponding lanes, modulo 256.
//
// The low seven bits of both operands are added with the lane's top bit
// masked out, so the carry is absorbed by the spare bit instead of leaking
// into the next lane. The true top bit of each lane is then a7 XOR b7 XOR
// carry-in, where the carry-in is exactly the top bit of the masked sum, so
// XOR-ing (a XOR b) restricted to the top bits back in reconstructs it.
func (v U8x8) WrappingAdd(o U8x8) U8x8 {
	low := (v.n & low7Bits) + (o.n & low7Bits)
	return U8x8{low ^ ((v.n ^ o.n) & high1Bit)}
}

// SaturatingAdd adds corresponding lanes, clamping at the maximum value 255
// instead of wrapping.
func (v U8x8) SaturatingAdd(o U8x8) U8x8 {
	sum := v.WrappingAdd(o).n
	// Full-adder carry-out of the top bit: majority(a7, b7, c6), with the
	// incoming carry recovered from the wrapped sum.
	carry := ((v.n & o.n) | ((v.n | o.n) &^ sum)) & high1Bit
	return U8x8{sum | msbBroadcast(carry)}
}

// WrappingSub subtracts corresponding lanes, modulo 256.
//
// Setting the top bit of each minuend lane and clearing it from each
// subtrahend lane guarantees the per-lane borrow stops at the lane
// boundary; the XOR term reconstructs the true top bit afterwards.
func (v U8x8) WrappingSub(o U8x8) U8x8 {
	diff := (v.n | high1Bit) - (o.n & low7Bits)
	return U8x8{diff ^ ((v.n ^ ^o.n) & high1Bit)}
}

// SaturatingSub subtracts corresponding lanes, clamping at the minimum
// value 0 instead of wrapping.
func (v U8x8) SaturatingSub(o U8x8) U8x8 {
	diff := v.WrappingSub(o).n
	borrow := ((^v.n & o.n) | ((^v.n | o.n) & diff)) & high1Bit
	return U8x8{diff &^ msbBroadcast(borrow)}
}

// AbsDiff computes the absolute difference between corresponding lanes.
func (v U8x8) AbsDiff(o U8x8) U8x8 {
	// Order the operands per lane, then subtract the smaller from the
	// larger. A borrow rippling in from a lower lane can only flip the
	// selector of a lane whose operands are equal, and swapping equal
	// operands changes nothing.
	m := msbBroadcast(borrowOut(v.n, o.n))
	larger := (v.n &^ m) | (o.n & m)
	smaller := (v.n & m) | (o.n &^ m)
	diff := (larger | high1Bit) - (smaller & low7Bits)
	return U8x8{diff ^ ((larger ^ ^smaller) & high1Bit)}
}

// Max picks the larger of corresponding lanes.
func (v U8x8) Max(o U8x8) U8x8 {
	m := msbBroadcast(borrowOut(v.n, o.n))
	return U8x8{(v.n &^ m) | (o.n & m)}
}

// Min picks the smaller of corresponding lanes.
func (v U8x8) Min(o U8x8) U8x8 {
	m := msbBroadcast(borrowOut(v.n, o.n))
	return U8x8{(v.n & m) | (o.n &^ m)}
}

// Mean computes the integer mean of corresponding lanes, rounding down.
//
// This is (v + o)/2 computed as the carry-save identity
// (v AND o) + ((v XOR o) >> 1), with the XOR's low bits cleared so the
// shift cannot drag a bit across a lane boundary.
func (v U8x8) Mean(o U8x8) U8x8 {
	shared := v.n & o.n
	halved := ((v.n ^ o.n) & 0xfefefefefefefefe) >> 1
	return U8x8{shared + halved}
}

// PopCount counts the set bits in each lane.
func (v U8x8) PopCount() U8x8 {
	// Classic parallel bit count: pairs, then nibbles, then bytes. Every
	// partial sum stays within its own byte, so one whole-word pass
	// counts all eight lanes.
	a := v.n - ((v.n >> 1) & 0x5555555555555555)
	b := (a & 0x3333333333333333) + ((a >> 2) & 0x3333333333333333)
	return U8x8{(b + (b >> 4)) & 0x0f0f0f0f0f0f0f0f}
}

// ReduceSum returns the sum of all eight lanes.
func (v U8x8) ReduceSum() int {
	// Fold adjacent lanes into four 16-bit sums, then accumulate those
	// into the top 16 bits with one multiply. The total is at most 2040,
	// so the 16-bit partials cannot overflow.
	pairs := (v.n & 0x00ff00ff00ff00ff) + ((v.n >> 8) & 0x00ff00ff00ff00ff)
	return int((pairs * 0x0001000100010001) >> 48)
}

// Equals compares corresponding lanes for equality.
func (v U8x8) Equals(o U8x8) Mask8x8 {
	// Zero-byte detection on the XOR: adding 0x7f to the low seven bits
	// carries into the top bit unless the byte was zero, and OR-ing the
	// raw XOR back in catches a set top bit. After complementing, a
	// lane's top bit is set iff the lanes were equal.
	xo := v.n ^ o.n
	nonzero := ((xo & low7Bits) + low7Bits) | xo
	return Mask8x8{(^nonzero & high1Bit) >> 7}
}

// LessThan returns a mask with true in every lane where v's value is less
// than o's.
func (v U8x8) LessThan(o U8x8) Mask8x8 {
	// Per-lane borrow algebra: the selector's top bit ends up set where
	// v >= o, so it is inverted before being shifted down into the
	// mask's 0/1 encoding.
	diff := (v.n | high1Bit) - (o.n & low7Bits)
	sel := ((v.n & (v.n ^ o.n)) | (diff &^ (v.n ^ o.n))) & high1Bit
	return Mask8x8{(sel ^ high1Bit) >> 7}
}

// GreaterThan returns a mask with true in every lane where v's value is
// greater than o's. GreaterThan(v, o) is identical to LessThan(o, v).
func (v U8x8) GreaterThan(o U8x8) Mask8x8 {
	diff := (o.n | high1Bit) - (v.n & low7Bits)
	sel := ((o.n & (o.n ^ v.n)) | (diff &^ (o.n ^ v.n))) & high1Bit
	return Mask8x8{(sel ^ high1Bit) >> 7}
}

// borrowOut computes, per lane, whether the whole-word subtraction a-b
// borrows out of the lane's top bit. Lower-lane borrows may ripple in, but
// they can only change the answer for lanes whose operands are equal.
func borrowOut(a, b uint64) uint64 {
	diff := a - b
	return ((^a & b) | ((^a | b) & diff)) & high1Bit
}

// msbBroadcast expands each lane's top bit into a full 0xFF/0x00 byte.
func msbBroadcast(n uint64) uint64 {
	return (n >> 7) * 0xff
}
