package eightbytes

import (
	"encoding/binary"
	"math/bits"
)

// Lane i of a vector lives in byte i of the word's in-memory representation,
// so the numeric position of a lane within the uint64 depends on host byte
// order. The bitmask conversions need a fixed lane-to-bit mapping and use
// these helpers to translate.

// bigEndianHost reports whether the host stores the most significant byte of
// a word at the lowest address.
var bigEndianHost = func() bool {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], 1)
	return b[7] == 1
}()

// hostToLE reorders n between host lane order and "lane 0 in the least
// significant byte" order. The conversion is its own inverse.
func hostToLE(n uint64) uint64 {
	if bigEndianHost {
		return bits.ReverseBytes64(n)
	}
	return n
}

// hostToBE reorders n between host lane order and "lane 0 in the most
// significant byte" order. The conversion is its own inverse.
func hostToBE(n uint64) uint64 {
	if bigEndianHost {
		return n
	}
	return bits.ReverseBytes64(n)
}
