// Package keys generates the random secret keys injected into scaffolded
// projects and printed by the new-key command.
package keys

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Algorithm is a supported JWT signing algorithm.
type Algorithm string

const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
)

// Bits returns the key size of the algorithm in bits.
func (a Algorithm) Bits() int {
	switch a {
	case HS256:
		return 256
	case HS384:
		return 384
	case HS512:
		return 512
	}
	return 0
}

// ParseSize resolves a new-key argument into a key size in bits. It accepts
// an algorithm name (case-insensitive) or a raw bit size.
func ParseSize(arg string) (int, error) {
	switch Algorithm(strings.ToUpper(strings.TrimSpace(arg))) {
	case HS256:
		return 256, nil
	case HS384:
		return 384, nil
	case HS512:
		return 512, nil
	}

	bits, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || bits <= 0 || bits%8 != 0 {
		return 0, fmt.Errorf("invalid key size %q: expected HS256, HS384, HS512 or a positive multiple of 8", arg)
	}
	return bits, nil
}

// Generate returns a random secret key of the given bit size, encoded as an
// unpadded Base64URL string. The output length is ceil(bits/6) characters.
func Generate(bits int) (string, error) {
	if bits <= 0 || bits%8 != 0 {
		return "", fmt.Errorf("key size must be a positive multiple of 8, got %d", bits)
	}

	buf := make([]byte, bits/8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
