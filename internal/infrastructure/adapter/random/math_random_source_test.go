package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMathRandomSource(t *testing.T) {
	src := NewMathRandomSource()

	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := src.Intn(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
		seen[v] = true
	}
	assert.Greater(t, len(seen), 1)

	assert.Panics(t, func() { src.Intn(0) })
}
