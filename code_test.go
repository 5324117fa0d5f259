package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoomCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code := newRoomCode()

		assert.Len(t, code, codeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, c), "unexpected character %q in code %q", c, code)
		}

		seen[code] = true
	}

	// 100 draws from a 32^6 space colliding down to a handful would
	// mean the generator is broken, not unlucky.
	assert.Greater(t, len(seen), 90)
}

func TestCodeAlphabetExcludesAmbiguous(t *testing.T) {
	for _, c := range "0O1I" {
		assert.False(t, strings.ContainsRune(codeAlphabet, c))
	}
}
