package main

// sext sign extends the low n bits of v.
func sext(v uint16, n uint) int {
	return int(int32(uint32(v)<<(32-n)) >> (32 - n))
}

// nz returns the N and Z condition codes of r.
func nz(r uint16) uint16 {
	var cc uint16
	if r&0x8000 != 0 {
		cc |= FLAGN
	}
	if r == 0 {
		cc |= FLAGZ
	}
	return cc
}

// add16 returns dst + src and its condition codes.
func add16(src, dst uint16) (uint16, uint16) {
	return arith(src, dst, int32(dst)+int32(src), false)
}

// sub16 returns dst - src and its condition codes. C is the borrow.
func sub16(src, dst uint16) (uint16, uint16) {
	return arith(src, dst, int32(dst)-int32(src), true)
}

// cmp16 returns src - dst and its condition codes. C is the borrow.
func cmp16(src, dst uint16) (uint16, uint16) {
	return arith(src, dst, int32(src)-int32(dst), true)
}

// arith derives the condition codes of an add or subtract of src and dst
// from the unmasked result. Bit 16 of wide is the carry (or borrow) out of
// the word.
func arith(src, dst uint16, wide int32, sub bool) (uint16, uint16) {
	r := uint16(wide & 0177777)
	cc := nz(r)
	opposite := (src^dst)&0x8000 != 0
	if sub {
		// operands of opposite sign, result with the sign of the source
		if opposite && (src^r)&0x8000 == 0 {
			cc |= FLAGV
		}
	} else {
		// operands of the same sign giving a result of the other sign
		if !opposite && (src^r)&0x8000 != 0 {
			cc |= FLAGV
		}
	}
	if (uint32(wide)>>16)&1 != 0 {
		cc |= FLAGC
	}
	return r, cc
}

// asr16 shifts v right one place, replicating the sign bit.
func asr16(v uint16) (uint16, uint16) {
	r := (v >> 1) | (v & 0x8000)
	cc := nz(r)
	if v&1 != 0 {
		cc |= FLAGC
	}
	return r, shiftv(cc)
}

// asl16 shifts v left one place.
func asl16(v uint16) (uint16, uint16) {
	r := uint16((uint32(v) << 1) & 0177777)
	cc := nz(r)
	if v&0x8000 != 0 {
		cc |= FLAGC
	}
	return r, shiftv(cc)
}

// shiftv sets V to N xor C.
func shiftv(cc uint16) uint16 {
	if (cc&FLAGN != 0) != (cc&FLAGC != 0) {
		cc |= FLAGV
	}
	return cc
}
