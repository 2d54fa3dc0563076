package entropy

import "math/bits"

// floorLog2 returns floor(log2(x)) for x > 0. The core only ever needs this
// for the two concrete widths it operates on: range is 32-bit, and Golomb
// values fit in 32 bits too.
func floorLog2(x uint32) int32 {
	assert(x != 0, errLog2OfZero)
	return int32(bits.Len32(x)) - 1
}

// appendBigEndian appends the low 8*nbytes bits of value to data in
// big-endian order (most significant selected byte first). nbytes must be
// in [0, 8], and value must fit in nbytes bytes.
func appendBigEndian(data []byte, value uint64, nbytes int) []byte {
	assert(nbytes >= 0 && nbytes <= 8, errBadNBits)
	for i := nbytes - 1; i >= 0; i-- {
		data = append(data, byte(value>>uint(8*i)))
	}
	return data
}
