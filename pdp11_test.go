package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/sirupsen/logrus/hooks/test"
)

const movImmediate = "0012700 0000005 0000000\n"

func TestRunTrace(t *testing.T) {
	is := is.New(t)
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	cmd := runCmd{Trace: true}
	is.NoErr(cmd.Run(strings.NewReader(movImmediate), &out, log))
	is.Equal(out.String(), `
instruction trace:
at 000000: 012700 MOV $000005, R0
at 000004: 000000 HALT

execution statistics (in decimal):
  instructions executed     = 2
  instruction words fetched = 2
  data words read           = 1
  data words written        = 0
  branches executed         = 0
  branches taken            = 0
`)
}

func TestRunQuiet(t *testing.T) {
	is := is.New(t)
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	cmd := runCmd{StartAddr: "0"}
	is.NoErr(cmd.Run(strings.NewReader("0000000"), &out, log))
	is.True(strings.HasPrefix(out.String(), "execution statistics (in decimal):\n"))
	is.True(strings.Contains(out.String(), "instructions executed     = 1\n"))
}

func TestRunVerbose(t *testing.T) {
	is := is.New(t)
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	cmd := runCmd{Verbose: true}
	image := "0012700 0000005 0010021 0000000" // MOV $5, R0; MOV R0, (R1)+; HALT
	is.NoErr(cmd.Run(strings.NewReader(image), &out, log))
	got := out.String()
	for _, want := range []string{
		"reading words in octal from stdin:\n  0012700\n  0000005\n  0010021\n  0000000\n",
		"instruction trace:\n",
		"at 000000: 012700 MOV $000005, R0\n",
		"  src.value = 0000005\n",
		"  nzvc bits = 4'b0000\n",
		"  R0:0000005  R2:0000000  R4:0000000  R6:0000000\n",
		"  R1:0000000  R3:0000000  R5:0000000  R7:0000004\n",
		"at 000004: 010021 MOV R0, (R1)+\n",
		"  value 0000005 is written to 0000000\n",
		"data words written        = 1\n",
		"first 20 words of memory after execution halts:\n  0000: 000005\n  0002: 000005\n",
		"  0046: 000000\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunBothModesIsQuiet(t *testing.T) {
	is := is.New(t)
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	cmd := runCmd{Trace: true, Verbose: true}
	is.NoErr(cmd.Run(strings.NewReader(movImmediate), &out, log))
	is.True(!strings.Contains(out.String(), "instruction trace"))
	is.Equal(cmd.mode(), Quiet)
}

func TestRunImageFile(t *testing.T) {
	is := is.New(t)
	log, _ := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "sob.oct")
	is.NoErr(os.WriteFile(path, []byte("012700\n000003\n077001\n000000\n"), 0644))
	var out bytes.Buffer
	cmd := runCmd{Image: path}
	is.NoErr(cmd.Run(strings.NewReader("garbage"), &out, log))
	is.True(strings.Contains(out.String(), "branches executed         = 3\n"))
	is.True(strings.Contains(out.String(), "branches taken            = 2 (66.7%)\n"))
}

func TestRunStartAddr(t *testing.T) {
	is := is.New(t)
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	cmd := runCmd{Trace: true, StartAddr: "4"}
	is.NoErr(cmd.Run(strings.NewReader("0000777 0000777 0000000"), &out, log))
	is.True(strings.Contains(out.String(), "at 000004: 000000 HALT\n"))

	cmd = runCmd{StartAddr: "3"}
	is.True(cmd.Run(strings.NewReader(movImmediate), &out, log) != nil)
}

func TestRunBadImage(t *testing.T) {
	is := is.New(t)
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	cmd := runCmd{}
	err := cmd.Run(strings.NewReader("0012700 9"), &out, log)
	is.True(err != nil)
	is.True(strings.HasPrefix(err.Error(), "stdin: word 1:"))
}

func TestRunFault(t *testing.T) {
	is := is.New(t)
	log, hook := test.NewNullLogger()
	var out bytes.Buffer
	cmd := runCmd{}
	err := cmd.Run(strings.NewReader("0012700 0000001 0011001 0000000"), &out, log)
	var f fault
	is.True(errors.As(err, &f))
	is.Equal(f.Error(), "unibus: odd address 000001")
	is.Equal(hook.LastEntry().Data["pc"], "000004")
	is.Equal(hook.LastEntry().Message, "unibus: odd address 000001")
	is.True(!strings.Contains(out.String(), "execution statistics"))
}
