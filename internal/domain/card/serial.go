package card

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// SerialGenerator produces candidate serial numbers. Uniqueness is checked
// by the caller.
type SerialGenerator interface {
	Generate() (string, error)
}

type RandomSerialGenerator struct{}

func NewRandomSerialGenerator() SerialGenerator {
	return &RandomSerialGenerator{}
}

var serialSpan = big.NewInt(MaxSerial - MinSerial + 1)

func (g *RandomSerialGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, serialSpan)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+MinSerial, 10), nil
}
