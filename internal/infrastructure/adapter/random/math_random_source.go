package random

import (
	"math/rand"

	"github.com/leoandrade/payment-api/internal/domain/port/core"
)

// MathRandomSource implements the RandomSource interface on the runtime-seeded math/rand generator
type MathRandomSource struct{}

// NewMathRandomSource creates a new random source
func NewMathRandomSource() core.RandomSource {
	return &MathRandomSource{}
}

// Intn returns a number in [0, n). It panics if n <= 0.
func (s *MathRandomSource) Intn(n int) int {
	return rand.Intn(n)
}
