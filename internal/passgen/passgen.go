// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package passgen generates random passwords from rotating character classes.
package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// MinAutoLength is the shortest password `add --auto-gen` accepts.
const MinAutoLength = 8

// DefaultLength is used by `generate-password` when no length is given.
const DefaultLength = 16

// MaxLength is the longest password Generate produces.
const MaxLength = 1024

var ErrLength = errors.New("password length must be between 1 and 1024")

type class int

const (
	letter class = iota
	digit
	special
)

var alphabets = map[class][]byte{
	letter:  asciiRanges([2]byte{'A', 'Z'}, [2]byte{'a', 'z'}),
	digit:   asciiRanges([2]byte{'0', '9'}),
	special: asciiRanges([2]byte{33, 47}, [2]byte{58, 64}, [2]byte{91, 96}, [2]byte{123, 126}),
}

func asciiRanges(ranges ...[2]byte) []byte {
	var out []byte
	for _, r := range ranges {
		for c := int(r[0]); c <= int(r[1]); c++ {
			out = append(out, byte(c))
		}
	}
	return out
}

// Options selects the optional character classes. Letters are always used.
type Options struct {
	Numbers bool
	Special bool
}

// Generate returns a password of length characters. Classes are drawn in
// shuffled rounds: each enabled class is used once per round, so every
// window of len(classes) characters starting on a round boundary contains
// each class exactly once.
func Generate(length int, opts Options) (string, error) {
	if length <= 0 || length > MaxLength {
		return "", ErrLength
	}
	classes := []class{letter}
	if opts.Numbers {
		classes = append(classes, digit)
	}
	if opts.Special {
		classes = append(classes, special)
	}

	out := make([]byte, 0, length)
	var round []class
	for len(out) < length {
		if len(round) == 0 {
			round = append(round[:0], classes...)
		}
		i, err := randIndex(len(round))
		if err != nil {
			return "", err
		}
		c := round[i]
		round = append(round[:i], round[i+1:]...)

		alphabet := alphabets[c]
		j, err := randIndex(len(alphabet))
		if err != nil {
			return "", err
		}
		out = append(out, alphabet[j])
	}
	return string(out), nil
}

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("random source: %w", err)
	}
	return int(v.Int64()), nil
}
