// Package token generates and validates opaque session tokens. A token is
// a run of random characters from a fixed alphabet followed by a short
// checksum keyed with a server secret, so a token can be rejected without
// touching storage.
package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"math/big"
)

const checksumLength = 4

var (
	ErrShortAlphabet = errors.New("token: alphabet must have at least 2 characters")
	ErrShortLength   = errors.New("token: length must exceed the checksum length")
)

type Codec struct {
	secret   []byte
	alphabet string
	length   int
}

func NewCodec(secret, alphabet string, length int) (*Codec, error) {
	if len(alphabet) < 2 {
		return nil, ErrShortAlphabet
	}
	if length <= checksumLength {
		return nil, ErrShortLength
	}
	return &Codec{secret: []byte(secret), alphabet: alphabet, length: length}, nil
}

// Generate returns a fresh token of the configured length.
func (c *Codec) Generate() (string, error) {
	body := make([]byte, c.length-checksumLength)
	max := big.NewInt(int64(len(c.alphabet)))
	for i := range body {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		body[i] = c.alphabet[n.Int64()]
	}
	return string(body) + c.checksum(body), nil
}

// Validate reports whether the token has the configured length and a
// checksum that matches its body. It never consults storage.
func (c *Codec) Validate(tok string) bool {
	if len(tok) != c.length {
		return false
	}
	body := tok[:c.length-checksumLength]
	for i := 0; i < len(body); i++ {
		if !c.inAlphabet(body[i]) {
			return false
		}
	}
	want := c.checksum([]byte(body))
	return subtle.ConstantTimeCompare([]byte(tok[c.length-checksumLength:]), []byte(want)) == 1
}

func (c *Codec) checksum(body []byte) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(body)
	sum := mac.Sum(nil)
	out := make([]byte, checksumLength)
	for i := range out {
		out[i] = c.alphabet[int(sum[i])%len(c.alphabet)]
	}
	return string(out)
}

func (c *Codec) inAlphabet(b byte) bool {
	for i := 0; i < len(c.alphabet); i++ {
		if c.alphabet[i] == b {
			return true
		}
	}
	return false
}
