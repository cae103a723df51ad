package insts

// Bits returns the unsigned value of bits high..low (inclusive) of v.
// Bit 0 is the least significant bit; high must not be below low.
func Bits(v uint32, high, low uint) uint32 {
	mask := uint32(1)<<(high-low+1) - 1
	return (v >> low) & mask
}

// SignExtend interprets the low width bits of v as a two's complement
// number.
func SignExtend(v uint32, width uint) int32 {
	m := uint32(1) << (width - 1)
	v &= uint32(1)<<width - 1
	return int32((v ^ m) - m)
}

// signedBits extracts bits high..low of v and sign-extends the result.
func signedBits(v uint32, high, low uint) int32 {
	return SignExtend(Bits(v, high, low), high-low+1)
}
