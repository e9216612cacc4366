package main

import "fmt"

// fault is a fatal machine invariant violation: a corrupted machine state or
// a malformed program image. It is raised with panic, like a trap, but the
// processor never services it.
type fault struct {
	msg string
}

func (f fault) Error() string { return f.msg }

func faultf(format string, args ...interface{}) {
	panic(fault{fmt.Sprintf(format, args...)})
}
