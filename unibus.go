package main

// MEMSIZE is the size of core memory in words.
const MEMSIZE = 32 << 10

// UNIBUS is the memory bus of the machine. Only core memory is attached;
// there is no io page.
type UNIBUS struct {

	// 32 KW of core memory, the whole 16 bit byte address space.
	// [000000, 0200000)
	core [MEMSIZE]uint16
}

// read16 reads the word at byte address addr.
func (u *UNIBUS) read16(addr uint16) uint16 {
	return u.core[u.index(addr)]
}

// write16 writes v to the word at byte address addr.
func (u *UNIBUS) write16(addr, v uint16) {
	u.core[u.index(addr)] = v
}

// index converts byte address addr to a core index.
func (u *UNIBUS) index(addr uint16) int {
	if addr&1 != 0 {
		faultf("unibus: odd address %06o", addr)
	}
	i := int(addr >> 1)
	if i >= len(u.core) {
		faultf("unibus: address %06o out of range", addr)
	}
	return i
}

// load copies words into core starting at byte address addr.
func (u *UNIBUS) load(addr uint16, words ...uint16) {
	i := u.index(addr)
	if len(words) > len(u.core)-i {
		faultf("unibus: %d words at %06o exceed core", len(words), addr)
	}
	copy(u.core[i:], words)
}
