package main

import (
	"fmt"
	"io"
)

// tracer writes the per instruction trace. The zero value is quiet.
type tracer struct {
	mode Mode
	w    io.Writer
}

func (t *tracer) on() bool      { return t.mode >= Trace && t.w != nil }
func (t *tracer) verbose() bool { return t.mode >= Verbose && t.w != nil }

func (t *tracer) printf(format string, args ...interface{}) {
	if t.on() {
		fmt.Fprintf(t.w, format, args...)
	}
}

// instruction traces the instruction about to execute at kb.pc.
func (t *tracer) instruction(kb *KB11, op *opcode, instr uint16) {
	if !t.on() {
		return
	}
	if op == nil {
		t.printf("at %06o: %06o no matching instruction\n", kb.pc, instr)
		return
	}
	t.printf("at %06o: %06o %s\n", kb.pc, instr, kb.disasm(kb.pc))
}

// cc traces the condition codes.
func (t *tracer) cc(psw uint16) {
	bit := func(f uint16) int {
		if psw&f > 0 {
			return 1
		}
		return 0
	}
	t.printf("  nzvc bits = 4'b%d%d%d%d\n", bit(FLAGN), bit(FLAGZ), bit(FLAGV), bit(FLAGC))
}

func (t *tracer) arith(psw, src, dst, res uint16) {
	if !t.verbose() {
		return
	}
	t.printf("  src.value = 0%06o\n", src)
	t.printf("  dst.value = 0%06o\n", dst)
	t.printf("  result    = 0%06o\n", res)
	t.cc(psw)
}

func (t *tracer) shift(psw, dst, res uint16) {
	if !t.verbose() {
		return
	}
	t.printf("  dst.value = 0%06o\n", dst)
	t.printf("  result    = 0%06o\n", res)
	t.cc(psw)
}
