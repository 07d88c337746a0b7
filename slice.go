package eightbytes

import "unsafe"

// SplitWords reinterprets s as a maximal run of whole 8-byte vectors plus
// the unaligned leading and trailing bytes that cannot be part of one.
// len(head) and len(tail) are at most 7, and the three regions cover s
// exactly, in order.
//
// words aliases s's storage: no bytes are copied, and writing a vector
// through words writes the corresponding eight bytes of s. head and tail
// must be handled by the caller with per-byte scalar code.
func SplitWords(s []byte) (head []byte, words []U8x8, tail []byte) {
	if len(s) == 0 {
		return s, nil, nil
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	lead := int(-addr & 7)
	if lead > len(s) {
		lead = len(s)
	}
	head = s[:lead]
	rest := s[lead:]
	n := len(rest) / 8
	if n == 0 {
		return head, nil, rest
	}
	words = unsafe.Slice((*U8x8)(unsafe.Pointer(unsafe.SliceData(rest))), n)
	return head, words, rest[n*8:]
}

// SplitWordsString is the read-only variant of [SplitWords], splitting a
// string's bytes with the same logic. words shares the string's storage and
// must not be written.
func SplitWordsString(s string) (head string, words []U8x8, tail string) {
	if len(s) == 0 {
		return s, nil, ""
	}
	addr := uintptr(unsafe.Pointer(unsafe.StringData(s)))
	lead := int(-addr & 7)
	if lead > len(s) {
		lead = len(s)
	}
	head = s[:lead]
	rest := s[lead:]
	n := len(rest) / 8
	if n == 0 {
		return head, nil, rest
	}
	words = unsafe.Slice((*U8x8)(unsafe.Pointer(unsafe.StringData(rest))), n)
	return head, words, rest[n*8:]
}

// CountEqual returns the number of bytes in s equal to v, visiting the
// aligned middle of s eight bytes at a time.
func CountEqual(s []byte, v byte) int {
	head, words, tail := SplitWords(s)
	n := 0
	for _, b := range head {
		if b == v {
			n++
		}
	}
	needle := Splat(v)
	for _, w := range words {
		n += w.Equals(needle).CountTrue()
	}
	for _, b := range tail {
		if b == v {
			n++
		}
	}
	return n
}

// AddConstInplace adds v to every byte of s in place, wrapping on overflow.
func AddConstInplace(s []byte, v byte) {
	head, words, tail := SplitWords(s)
	for i, b := range head {
		head[i] = b + v
	}
	addend := Splat(v)
	for i, w := range words {
		words[i] = w.WrappingAdd(addend)
	}
	for i, b := range tail {
		tail[i] = b + v
	}
}
