package main

import (
	"fmt"
	"strings"
)

var (
	rs = [...]string{"R0", "R1", "R2", "R3", "R4", "R5", "SP", "PC"}
)

// disasmaddr writes operand m, a six bit mode and register field, to b.
// a is the address of the next unread word of the instruction stream; the
// address following any index or immediate word consumed is returned.
func (kb *KB11) disasmaddr(b *strings.Builder, m, a uint16) uint16 {
	if m&7 == 7 {
		switch m {
		case 027:
			fmt.Fprintf(b, "$%06o", kb.unibus.read16(a))
			return a + 2
		case 037:
			fmt.Fprintf(b, "*$%06o", kb.unibus.read16(a))
			return a + 2
		case 067:
			fmt.Fprintf(b, "%06o", a+2+kb.unibus.read16(a))
			return a + 2
		case 077:
			fmt.Fprintf(b, "*%06o", a+2+kb.unibus.read16(a))
			return a + 2
		}
	}

	switch m & 070 {
	case 000:
		b.WriteString(rs[m&7])
	case 010:
		fmt.Fprintf(b, "(%s)", rs[m&7])
	case 020:
		fmt.Fprintf(b, "(%s)+", rs[m&7])
	case 030:
		fmt.Fprintf(b, "*(%s)+", rs[m&7])
	case 040:
		fmt.Fprintf(b, "-(%s)", rs[m&7])
	case 050:
		fmt.Fprintf(b, "*-(%s)", rs[m&7])
	case 060:
		fmt.Fprintf(b, "%06o(%s)", kb.unibus.read16(a), rs[m&7])
		return a + 2
	case 070:
		fmt.Fprintf(b, "*%06o(%s)", kb.unibus.read16(a), rs[m&7])
		return a + 2
	}
	return a
}

// disasm returns the instruction at a in assembler syntax.
func (kb *KB11) disasm(a uint16) string {
	ins := kb.unibus.read16(a)
	l := decode(ins)
	if l == nil {
		return "???"
	}

	var b strings.Builder
	b.WriteString(l.msg)
	s := (ins & 07700) >> 6
	d := ins & 077
	o := ins & 0377
	next := a + 2
	switch l.flag {
	case S | DD:
		b.WriteString(" ")
		next = kb.disasmaddr(&b, s, next)
		b.WriteString(", ")
		kb.disasmaddr(&b, d, next)
	case DD:
		b.WriteString(" ")
		kb.disasmaddr(&b, d, next)
	case RR | O:
		// SOB subtracts its offset from PC
		if off := sext(ins&077, 6); off > 0 {
			fmt.Fprintf(&b, " %s, -%03o", rs[(ins&0700)>>6], 2*off)
		} else {
			fmt.Fprintf(&b, " %s, +%03o", rs[(ins&0700)>>6], -2*off)
		}
	case O:
		if o&0x80 > 0 {
			fmt.Fprintf(&b, " -%03o", 2*((0xFF^o)+1))
		} else {
			fmt.Fprintf(&b, " +%03o", 2*o)
		}
	}
	return b.String()
}
