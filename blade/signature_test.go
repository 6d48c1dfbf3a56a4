package blade_test

import (
	"testing"

	"github.com/katalvlaran/clifford/blade"
	"github.com/stretchr/testify/assert"
)

func TestSignature_Grade(t *testing.T) {
	assert.Equal(t, 0, blade.Signature(0).Grade())
	assert.Equal(t, 1, blade.Signature(0b1000).Grade())
	assert.Equal(t, 3, blade.Signature(0b1011).Grade())
	assert.Equal(t, 8, blade.Signature(0xFF).Grade())
}

func TestSignature_Has(t *testing.T) {
	s := blade.Signature(0b0101)
	assert.True(t, s.Has(0))
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(2))
	assert.False(t, s.Has(-1))
	assert.False(t, s.Has(blade.MaxDimensions))
}

func TestSignature_String(t *testing.T) {
	assert.Equal(t, "1", blade.Signature(0).String())
	assert.Equal(t, "e1", blade.Signature(1).String())
	assert.Equal(t, "e2e4", blade.Signature(0b1010).String())
	assert.Equal(t, "e1e2e3e4e5e6e7e8", blade.Signature(0xFF).String())
}
