package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "B1234XY", NormalizePlate("b 1234 xy"))
	assert.Equal(t, "B1234XY", NormalizePlate("B-1234-XY"))
	assert.Equal(t, "B1234XY", NormalizePlate("B1234XY"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("0812345678"))
	assert.True(t, ValidPhone("0812345678901"))
	assert.False(t, ValidPhone("081234567"), "too short")
	assert.False(t, ValidPhone("08123456789012"), "too long")
	assert.False(t, ValidPhone("08123abc678"), "non-digits")
	assert.False(t, ValidPhone(""))
}
