package main

import (
	"fmt"
	"io"
)

// Stats counts what the processor did. Counters only ever increase, with
// the exception of the compensation for an undecodable instruction.
type Stats struct {
	Instructions int // instructions executed
	Fetches      int // instruction words fetched, including index words
	Reads        int // data words read
	Writes       int // data words written
	Branches     int // branch instructions executed
	Taken        int // branches taken
}

// Report writes the statistics to w in decimal.
func (s Stats) Report(w io.Writer) error {
	_, err := fmt.Fprintf(w, `execution statistics (in decimal):
  instructions executed     = %d
  instruction words fetched = %d
  data words read           = %d
  data words written        = %d
  branches executed         = %d
  branches taken            = %d`,
		s.Instructions, s.Fetches, s.Reads, s.Writes, s.Branches, s.Taken)
	if err != nil {
		return err
	}
	if s.Branches > 0 {
		_, err = fmt.Fprintf(w, " (%0.1f%%)\n", float64(s.Taken)*100/float64(s.Branches))
	} else {
		_, err = fmt.Fprintln(w)
	}
	return err
}
