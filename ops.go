package main

// operand shapes, used by the disassembler
const (
	DD = 1 << 1 // destination
	S  = 1 << 2 // source
	RR = 1 << 3 // register
	O  = 1 << 4 // branch offset
)

type opcode struct {
	mask uint16
	ins  uint16
	msg  string
	flag uint8
	exec func(kb *KB11, instr uint16, src, dst *phrase)
}

// opcodes is searched in order and the first match wins. No two entries
// match the same word.
var opcodes = [...]opcode{
	{0177777, 0000000, "HALT", 0, (*KB11).HALT},
	{0170000, 0010000, "MOV", S | DD, (*KB11).MOV},
	{0170000, 0020000, "CMP", S | DD, (*KB11).CMP},
	{0170000, 0060000, "ADD", S | DD, (*KB11).ADD},
	{0170000, 0160000, "SUB", S | DD, (*KB11).SUB},
	{0177000, 0077000, "SOB", RR | O, (*KB11).SOB},
	{0177400, 0000400, "BR", O, (*KB11).BR},
	{0177400, 0001000, "BNE", O, (*KB11).BNE},
	{0177400, 0001400, "BEQ", O, (*KB11).BEQ},
	{0177700, 0006200, "ASR", DD, (*KB11).ASR},
	{0177700, 0006300, "ASL", DD, (*KB11).ASL},
}

// decode returns the opcode matching instr, or nil.
func decode(instr uint16) *opcode {
	for i := range opcodes {
		if instr&opcodes[i].mask == opcodes[i].ins {
			return &opcodes[i]
		}
	}
	return nil
}

// HALT 000000
func (kb *KB11) HALT(instr uint16, src, dst *phrase) {
	kb.state = halted
}

// MOV 01SSDD
func (kb *KB11) MOV(instr uint16, src, dst *phrase) {
	val := kb.getOperand(src)
	kb.psw = (kb.psw & FLAGC) | nz(val)
	if kb.trace.verbose() {
		kb.trace.printf("  src.value = 0%06o\n", src.value)
		kb.trace.cc(kb.psw)
	}
	kb.putResult(dst, val)
}

// CMP 02SSDD
func (kb *KB11) CMP(instr uint16, src, dst *phrase) {
	s := kb.getOperand(src)
	d := kb.getOperand(dst)
	res, cc := cmp16(s, d)
	kb.setcc(cc)
	kb.trace.arith(kb.psw, s, d, res)
}

// ADD 06SSDD
func (kb *KB11) ADD(instr uint16, src, dst *phrase) {
	s := kb.getOperand(src)
	d := kb.getOperand(dst)
	sum, cc := add16(s, d)
	kb.setcc(cc)
	kb.trace.arith(kb.psw, s, d, sum)
	kb.updateOperand(dst, sum)
}

// SUB 16SSDD
func (kb *KB11) SUB(instr uint16, src, dst *phrase) {
	s := kb.getOperand(src)
	d := kb.getOperand(dst)
	diff, cc := sub16(s, d)
	kb.setcc(cc)
	kb.trace.arith(kb.psw, s, d, diff)
	kb.updateOperand(dst, diff)
}

// SOB 077Rnn
func (kb *KB11) SOB(instr uint16, src, dst *phrase) {
	r := src.reg
	kb.R[r]--
	kb.stats.Branches++
	if kb.R[r] != 0 {
		kb.R[7] = uint16((int(kb.R[7]) - 2*sext(instr&077, 6)) & 0177777)
		kb.stats.Taken++
	}
}

// BR 0004 offset
func (kb *KB11) BR(instr uint16, src, dst *phrase) {
	kb.branch(instr, true)
}

// BNE 0010 offset
func (kb *KB11) BNE(instr uint16, src, dst *phrase) {
	kb.branch(instr, !kb.z())
}

// BEQ 0014 offset
func (kb *KB11) BEQ(instr uint16, src, dst *phrase) {
	kb.branch(instr, kb.z())
}

// ASR 0062DD
func (kb *KB11) ASR(instr uint16, src, dst *phrase) {
	d := kb.getOperand(dst)
	res, cc := asr16(d)
	kb.setcc(cc)
	kb.trace.shift(kb.psw, d, res)
	kb.updateOperand(dst, res)
}

// ASL 0063DD
func (kb *KB11) ASL(instr uint16, src, dst *phrase) {
	d := kb.getOperand(dst)
	res, cc := asl16(d)
	kb.setcc(cc)
	kb.trace.shift(kb.psw, d, res)
	kb.updateOperand(dst, res)
}

// branch adds twice the signed 8 bit offset in instr to PC when taken.
func (kb *KB11) branch(instr uint16, taken bool) {
	kb.stats.Branches++
	if !taken {
		return
	}
	kb.stats.Taken++
	kb.R[7] = uint16((int(kb.R[7]) + 2*sext(instr&0377, 8)) & 0177777)
}
