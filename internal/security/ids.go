package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the
// requested length drawn from the alphabet.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}

// NewID mints an opaque entity id with a short type prefix ("u" for patient
// accounts, "t" for therapists, "log" for journal entries, "r" for
// reflections). Seed fixtures use the same prefixes with fixed suffixes.
func NewID(prefix string) (string, error) {
	suffix, err := RandomString(idLength, idAlphabet)
	if err != nil {
		return "", err
	}
	return prefix + suffix, nil
}
