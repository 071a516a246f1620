package joincode

import (
	"crypto/rand"
	"math/big"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/moundworks/diceball/internal/common/joincode Generator

// alphabet omits 0/O, 1/I/L so codes survive being read aloud or
// hand-copied.
const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// DefaultLength is the code length used when none is configured.
const DefaultLength = 6

// Generator produces short shareable join codes. Collision handling
// belongs to the caller; the generator is just a code source.
type Generator interface {
	Generate() string
}

// Config for the join code generator
type Config struct {
	// Length of generated codes; DefaultLength when zero
	Length int
}

type generator struct {
	length int
}

// New creates a join code generator.
func New(cfg *Config) *generator {
	length := DefaultLength
	if cfg != nil && cfg.Length > 0 {
		length = cfg.Length
	}
	return &generator{length: length}
}

// Generate returns a new random code drawn from the restricted alphabet.
func (g *generator) Generate() string {
	max := big.NewInt(int64(len(alphabet)))
	code := make([]byte, g.length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform source is broken
			panic(err)
		}
		code[i] = alphabet[n.Int64()]
	}
	return string(code)
}
