package shortener

import "github.com/jaevor/go-nanoid"

// CodeGenerator generates unique short identifiers.
type CodeGenerator func() string

// alphabet matches the identifier alphabet of the short IDs: digits plus
// lower- and upper-case ASCII letters.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewCodeGenerator returns a generator producing random short IDs of the
// given length over the base62 alphabet.
func NewCodeGenerator(length int) (CodeGenerator, error) {
	gen, err := nanoid.CustomASCII(alphabet, length)
	if err != nil {
		return nil, err
	}

	return CodeGenerator(gen), nil
}
