package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Mode selects how much the processor reports while it runs.
type Mode int

const (
	Quiet   Mode = iota // final statistics only
	Trace               // one line per instruction
	Verbose             // trace plus operand values, flags and registers
)

// Config carries the run time options of a KB11.
type Config struct {
	Mode Mode
	Out  io.Writer          // trace output
	Log  logrus.FieldLogger // diagnostics, defaults to the standard logger
}

type runstate int

const (
	fetching runstate = iota
	executing
	halted
)

type KB11 struct {
	unibus UNIBUS

	pc uint16    // address of the instruction being executed
	R  [8]uint16 // R0-R7, R7 is the program counter

	psw uint16 // condition codes, NZVC in the low four bits

	state runstate
	stats Stats
	trace tracer
	log   logrus.FieldLogger
}

// New returns a KB11 configured by cfg.
func New(cfg Config) *KB11 {
	kb := &KB11{
		trace: tracer{mode: cfg.Mode, w: cfg.Out},
		log:   cfg.Log,
	}
	kb.Reset()
	return kb
}

// Reset clears the registers, condition codes and statistics. Core is left
// untouched.
func (kb *KB11) Reset() {
	kb.pc = 0
	kb.R = [8]uint16{}
	kb.psw = 0
	kb.state = fetching
	kb.stats = Stats{}
}

// Load copies words into core starting at byte address addr.
func (kb *KB11) Load(addr uint16, words ...uint16) {
	kb.unibus.load(addr, words...)
}

// Run executes instructions until HALT. A fault stops the processor and is
// returned.
func (kb *KB11) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fault)
			if !ok {
				panic(r)
			}
			err = f
		}
	}()
	for kb.state != halted {
		kb.step()
	}
	return nil
}

// Halted reports whether the processor has executed HALT.
func (kb *KB11) Halted() bool { return kb.state == halted }

// Stats returns the execution statistics collected so far.
func (kb *KB11) Stats() Stats { return kb.stats }

func (kb *KB11) step() {
	kb.state = fetching
	kb.pc = kb.R[7]
	instr := kb.fetch16()

	kb.state = executing
	src := phrase{mode: (instr >> 9) & 7, reg: (instr >> 6) & 7}
	dst := phrase{mode: (instr >> 3) & 7, reg: instr & 7}

	op := decode(instr)
	kb.trace.instruction(kb, op, instr)
	if op == nil {
		kb.logger().WithFields(logrus.Fields{
			"pc":    fmt.Sprintf("%06o", kb.pc),
			"instr": fmt.Sprintf("%06o", instr),
		}).Error("no matching instruction")
		kb.stats.Instructions--
	} else {
		op.exec(kb, instr, &src, &dst)
	}
	kb.stats.Instructions++

	if kb.trace.verbose() {
		kb.printstate()
	}
	if kb.state == executing {
		kb.state = fetching
	}
}

// fetch16 reads the word at PC and advances PC past it.
func (kb *KB11) fetch16() uint16 {
	val := kb.unibus.read16(kb.R[7])
	kb.stats.Fetches++
	kb.R[7] += 2
	return val
}

// read16 reads a data word.
func (kb *KB11) read16(addr uint16) uint16 {
	kb.stats.Reads++
	return kb.unibus.read16(addr)
}

// write16 writes a data word.
func (kb *KB11) write16(addr, v uint16) {
	if kb.trace.verbose() {
		kb.trace.printf("  value 0%06o is written to 0%06o\n", v, addr)
	}
	kb.stats.Writes++
	kb.unibus.write16(addr, v)
}

func (kb *KB11) logger() logrus.FieldLogger {
	if kb.log == nil {
		return logrus.StandardLogger()
	}
	return kb.log
}

const (
	FLAGC = 1
	FLAGV = 2
	FLAGZ = 4
	FLAGN = 8
)

func (kb *KB11) n() bool { return kb.psw&FLAGN > 0 }
func (kb *KB11) z() bool { return kb.psw&FLAGZ > 0 }
func (kb *KB11) v() bool { return kb.psw&FLAGV > 0 }
func (kb *KB11) c() bool { return kb.psw&FLAGC > 0 }

// setcc replaces all four condition codes.
func (kb *KB11) setcc(cc uint16) {
	kb.psw = (kb.psw &^ 017) | (cc & 017)
}

func (kb *KB11) printstate() {
	kb.trace.printf("  R0:0%06o  R2:0%06o  R4:0%06o  R6:0%06o\n", kb.R[0], kb.R[2], kb.R[4], kb.R[6])
	kb.trace.printf("  R1:0%06o  R3:0%06o  R5:0%06o  R7:0%06o\n", kb.R[1], kb.R[3], kb.R[5], kb.R[7])
}

// dumpcore writes the first n words of core to w.
func (kb *KB11) dumpcore(w io.Writer, n int) {
	fmt.Fprintf(w, "\nfirst %d words of memory after execution halts:\n", n)
	for i := 0; i < n && i < len(kb.unibus.core); i++ {
		fmt.Fprintf(w, "  0%04o: %06o\n", 2*i, kb.unibus.core[i])
	}
}
