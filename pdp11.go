// pdp11 emulator.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

func main() {
	var cli runCmd
	ctx := kong.Parse(&cli,
		kong.Name("pdp11"),
		kong.Description("Run a PDP-11 program image of octal words."),
	)
	err := cli.Run(os.Stdin, os.Stdout, logrus.StandardLogger())
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	Trace     bool   `short:"t" help:"trace each instruction"`
	Verbose   bool   `short:"v" help:"trace with operands, flags and registers"`
	Image     string `name:"image" type:"existingfile" help:"path to program image, default stdin"`
	StartAddr string `name:"startaddr" default:"0" help:"initial program counter, octal"`
}

// mode returns the trace mode. Asking for both modes gets neither.
func (r *runCmd) mode() Mode {
	switch {
	case r.Trace && r.Verbose:
		return Quiet
	case r.Verbose:
		return Verbose
	case r.Trace:
		return Trace
	default:
		return Quiet
	}
}

func (r *runCmd) Run(stdin io.Reader, stdout io.Writer, log logrus.FieldLogger) error {
	mode := r.mode()

	var start uint64
	if r.StartAddr != "" {
		var err error
		start, err = strconv.ParseUint(r.StartAddr, 8, 16)
		if err != nil {
			return fmt.Errorf("startaddr: %w", err)
		}
		if start&1 != 0 {
			return fmt.Errorf("startaddr: %06o is odd", start)
		}
	}

	in, name := stdin, "stdin"
	if r.Image != "" {
		f, err := os.Open(r.Image)
		if err != nil {
			return err
		}
		defer f.Close()
		in, name = f, r.Image
	} else if f, ok := stdin.(*os.File); ok && isTerminal(f.Fd()) {
		log.Info("reading octal words from the terminal, end input with EOF")
	}

	var echo io.Writer
	if mode == Verbose {
		echo = stdout
		fmt.Fprintf(stdout, "\nreading words in octal from %s:\n", name)
	}
	words, err := loadImage(in, echo)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	cpu := New(Config{Mode: mode, Out: stdout, Log: log})
	cpu.Load(0, words...)
	cpu.R[7] = uint16(start)

	if mode != Quiet {
		fmt.Fprintf(stdout, "\ninstruction trace:\n")
	}
	if err := cpu.Run(); err != nil {
		log.WithFields(logrus.Fields{
			"pc":       fmt.Sprintf("%06o", cpu.pc),
			"executed": cpu.stats.Instructions,
		}).Error(err)
		return err
	}
	if mode != Quiet {
		fmt.Fprintln(stdout)
	}
	if err := cpu.Stats().Report(stdout); err != nil {
		return err
	}
	if mode == Verbose {
		cpu.dumpcore(stdout, 20)
	}
	return nil
}
