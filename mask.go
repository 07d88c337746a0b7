package eightbytes

import (
	"encoding/binary"
	"math/bits"
)

// Mask8x8 is a vector of eight boolean lanes, one per lane of a [U8x8].
// Each lane's byte is 0x00 (false) or 0x01 (true); no public operation ever
// produces any other byte value. Comparisons on [U8x8] return masks, and
// masks convert back to vectors via [Mask8x8.U8x8] and [Mask8x8.Select].
//
// Mask8x8 is an immutable value type. The zero value is all lanes false.
type Mask8x8 struct {
	n uint64
}

// AllFalse and AllTrue are the two constant masks.
var (
	AllFalse = Mask8x8{0}
	AllTrue  = Mask8x8{laneOnes}
)

// MaskFromBools packs the eight booleans of b into a mask, one per lane.
func MaskFromBools(b [8]bool) Mask8x8 {
	// Go does not guarantee the memory layout of bool, so the lanes are
	// mapped explicitly rather than reinterpreted.
	var raw [8]byte
	for i, set := range b {
		if set {
			raw[i] = 1
		}
	}
	return Mask8x8{binary.NativeEndian.Uint64(raw[:])}
}

// Bools unpacks the mask into an array of eight booleans, one per lane.
func (m Mask8x8) Bools() [8]bool {
	raw := U8x8{m.n}.Bytes()
	var b [8]bool
	for i, v := range raw {
		b[i] = v != 0
	}
	return b
}

const (
	// spreadMagic replicates each bit of an 8-bit mask at stride-7
	// offsets, landing source bit i on bit 8i among others.
	spreadMagic = 0x02040810204081
	// gatherMagic accumulates the low bit of every lane into the top
	// byte of the product.
	gatherMagic = 0x0102040810204080
)

// spreadBits moves bit i of mask into the least significant bit of numeric
// byte i of the result. The odd and even source bits are multiplied
// separately: within each group the replicas cannot collide and carry, so
// masking to the lane LSBs afterwards is exact.
func spreadBits(mask uint8) uint64 {
	raw := uint64(mask)
	return (((raw & 0x55) * spreadMagic) | ((raw & 0xaa) * spreadMagic)) & laneOnes
}

// MaskFromBitmaskLE converts a compact bitmask into a mask, treating a set
// bit as true. Bit 0 of the bitmask lands in lane 0.
func MaskFromBitmaskLE(mask uint8) Mask8x8 {
	return Mask8x8{hostToLE(spreadBits(mask))}
}

// MaskFromBitmaskBE converts a compact bitmask into a mask, treating a set
// bit as true. Bit 7 of the bitmask lands in lane 0.
func MaskFromBitmaskBE(mask uint8) Mask8x8 {
	return Mask8x8{hostToBE(spreadBits(mask))}
}

// BitmaskLE converts the mask into a compact bitmask with lane 0 in the
// least significant bit. It is the exact inverse of [MaskFromBitmaskLE].
func (m Mask8x8) BitmaskLE() uint8 {
	return uint8((hostToLE(m.n) * gatherMagic) >> 56)
}

// BitmaskBE converts the mask into a compact bitmask with lane 0 in the
// most significant bit. It is the exact inverse of [MaskFromBitmaskBE].
func (m Mask8x8) BitmaskBE() uint8 {
	return uint8((hostToBE(m.n) * gatherMagic) >> 56)
}

// Not toggles every lane. XOR-ing the all-true pattern touches only the
// defined 0/1 bit of each lane, keeping the representation canonical.
func (m Mask8x8) Not() Mask8x8 {
	return Mask8x8{m.n ^ laneOnes}
}

// And computes the logical AND of corresponding lanes.
func (m Mask8x8) And(o Mask8x8) Mask8x8 {
	return Mask8x8{m.n & o.n}
}

// Or computes the logical OR of corresponding lanes.
func (m Mask8x8) Or(o Mask8x8) Mask8x8 {
	return Mask8x8{m.n | o.n}
}

// U8x8 converts the mask into a byte vector with 1 in true lanes and 0 in
// false lanes.
func (m Mask8x8) U8x8() U8x8 {
	return U8x8{m.n}
}

// U8x8With converts the mask into a byte vector with v in true lanes and 0
// in false lanes.
func (m Mask8x8) U8x8With(v byte) U8x8 {
	return m.Select(v, 0)
}

// Select builds a byte vector holding trueVal in lanes where the mask is
// true and falseVal elsewhere — a branch-free per-lane conditional move.
func (m Mask8x8) Select(trueVal, falseVal byte) U8x8 {
	t := uint64(trueVal) * laneOnes
	f := uint64(falseVal) * laneOnes
	sel := m.n * 0xff
	return U8x8{(t & sel) | (f &^ sel)}
}

// CountTrue returns the number of true lanes, in [0,8].
func (m Mask8x8) CountTrue() int {
	return m.U8x8().ReduceSum()
}

// CountFalse returns the number of false lanes, in [0,8].
func (m Mask8x8) CountFalse() int {
	return 8 - bits.OnesCount64(m.n)
}
