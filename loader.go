package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var errImageTooLarge = errors.New("image larger than core")

// loadImage reads whitespace separated octal words from r until end of
// input. Each word read is echoed to echo when it is not nil.
func loadImage(r io.Reader, echo io.Writer) ([]uint16, error) {
	var words []uint16
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tok := sc.Text()
		v, err := strconv.ParseUint(tok, 8, 16)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", len(words), err)
		}
		if len(words) == MEMSIZE {
			return nil, fmt.Errorf("word %d: %w", len(words), errImageTooLarge)
		}
		if echo != nil {
			fmt.Fprintf(echo, "  0%06o\n", v)
		}
		words = append(words, uint16(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return words, nil
}
