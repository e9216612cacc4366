//go:build darwin || dragonfly || freebsd || netbsd || openbsd
// +build darwin dragonfly freebsd netbsd openbsd

package main

import "golang.org/x/sys/unix"

const getTermios = unix.TIOCGETA
