package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+15551234567"))
	assert.True(t, ValidatePhone("555-123-4567"))
	assert.True(t, ValidatePhone("(555) 123 4567"))
	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone("0123"))
}

func TestValidateZip(t *testing.T) {
	assert.True(t, ValidateZip("90210"))
	assert.True(t, ValidateZip("90210-1234"))
	assert.False(t, ValidateZip("9021"))
	assert.False(t, ValidateZip("902101"))
	assert.False(t, ValidateZip("ABCDE"))
}
