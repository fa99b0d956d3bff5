package referral

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Alphabet intentionally excludes nothing: codes are uppercase
// alphanumeric so they survive being read aloud or typed from a screenshot.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the fixed length of generated referral codes.
const CodeLength = 6

// maxAcceptedByte is the largest multiple of len(codeAlphabet) that fits
// in a byte. Random bytes at or above it are discarded so every alphabet
// character is drawn with equal probability.
const maxAcceptedByte = 256 - (256 % len(codeAlphabet))

// NewCode returns a random referral code of CodeLength uppercase
// alphanumeric characters, sampled uniformly over the alphabet.
func NewCode() (string, error) {
	return newCodeFrom(rand.Reader)
}

func newCodeFrom(random io.Reader) (string, error) {
	code := make([]byte, 0, CodeLength)
	buffer := make([]byte, CodeLength)

	for len(code) < CodeLength {
		if _, err := io.ReadFull(random, buffer); err != nil {
			return "", fmt.Errorf("referral: failed to read random bytes: %w", err)
		}

		for _, b := range buffer {
			if int(b) >= maxAcceptedByte {
				continue
			}

			code = append(code, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(code) == CodeLength {
				break
			}
		}
	}

	return string(code), nil
}
