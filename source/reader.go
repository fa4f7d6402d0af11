// Package source provides adapters that turn external inputs — readers,
// channels, callback producers, SQL queries — into the one-shot [iter.Seq]
// sequences a stream consumes.
//
// Every adapter yields a forward-only sequence that can be ranged over once.
// Adapters that can fail return a second function reporting the error, if
// any, once the sequence has ended.
package source

import (
	"bufio"
	"io"
	"iter"
)

// Runes yields the runes of r until EOF or a read error. Invalid UTF-8 bytes
// come through as utf8.RuneError, as bufio decodes them.
func Runes(r io.Reader) (iter.Seq[rune], func() error) {
	br := bufio.NewReader(r)

	var err error
	seq := func(yield func(rune) bool) {
		for {
			ru, _, e := br.ReadRune()
			if e != nil {
				if e != io.EOF {
					err = e
				}
				return
			}
			if !yield(ru) {
				return
			}
		}
	}

	return seq, func() error { return err }
}

// Bytes yields the bytes of r until EOF or a read error.
func Bytes(r io.Reader) (iter.Seq[byte], func() error) {
	br := bufio.NewReader(r)

	var err error
	seq := func(yield func(byte) bool) {
		for {
			b, e := br.ReadByte()
			if e != nil {
				if e != io.EOF {
					err = e
				}
				return
			}
			if !yield(b) {
				return
			}
		}
	}

	return seq, func() error { return err }
}
