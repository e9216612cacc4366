package main

// phrase is a single operand reference: an addressing mode and register
// taken from the instruction, and the location and value they resolve to.
type phrase struct {
	mode, reg uint16
	addr      uint16 // byte address of the operand, modes 1-7
	value     uint16
}

// resolve computes the location of p, applying the register side effects of
// its addressing mode. It must be called once per operand per instruction.
//
//	0  Rn       register
//	1  (Rn)     register deferred
//	2  (Rn)+    autoincrement
//	3  *(Rn)+   autoincrement deferred
//	4  -(Rn)    autodecrement
//	5  *-(Rn)   autodecrement deferred
//	6  X(Rn)    index, X is the next word of the instruction stream
//	7  *X(Rn)   index deferred
func (kb *KB11) resolve(p *phrase) {
	if p.mode > 7 {
		faultf("invalid addressing mode %o", p.mode)
	}
	if p.reg > 7 {
		faultf("invalid register %o", p.reg)
	}
	r := p.reg
	switch p.mode {
	case 0:
		p.addr = 0
	case 1:
		p.addr = kb.R[r]
	case 2:
		p.addr = kb.R[r]
		kb.R[r] += 2
	case 3:
		p.addr = kb.read16(kb.R[r])
		kb.R[r] += 2
	case 4:
		kb.R[r] -= 2
		p.addr = kb.R[r]
	case 5:
		kb.R[r] -= 2
		p.addr = kb.read16(kb.R[r])
	case 6:
		x := kb.fetch16()
		p.addr = kb.R[r] + x
	case 7:
		x := kb.fetch16()
		p.addr = kb.read16(kb.R[r] + x)
	}
}

// load reads the value at the resolved location of p.
func (kb *KB11) load(p *phrase) uint16 {
	if p.mode == 0 {
		p.value = kb.R[p.reg]
	} else {
		p.value = kb.read16(p.addr)
	}
	return p.value
}

// getOperand resolves p and reads its value.
func (kb *KB11) getOperand(p *phrase) uint16 {
	kb.resolve(p)
	return kb.load(p)
}

// putResult resolves p and writes v to it without reading the old value.
func (kb *KB11) putResult(p *phrase, v uint16) {
	kb.resolve(p)
	kb.updateOperand(p, v)
}

// updateOperand writes v to the location p already resolved to.
func (kb *KB11) updateOperand(p *phrase, v uint16) {
	p.value = v
	if p.mode == 0 {
		kb.R[p.reg] = v
		return
	}
	kb.write16(p.addr, v)
}
