package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWorkbook(t *testing.T) {
	zipHead := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 60)...)

	res := ValidateWorkbook("profiles.XLSX", zipHead)
	assert.True(t, res.Valid, res.Error)
	assert.Equal(t, ".xlsx", res.Extension)

	res = ValidateWorkbook("profiles.csv", zipHead)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Error, "extension")

	res = ValidateWorkbook("profiles", zipHead)
	assert.False(t, res.Valid)

	res = ValidateWorkbook("profiles.xlsx", []byte("first,last\n"))
	assert.False(t, res.Valid)
	assert.Contains(t, res.Error, "does not match")
}
