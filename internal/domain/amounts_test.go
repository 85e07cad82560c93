package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceAmount(t *testing.T) {
	assert.Equal(t, 5, CoerceAmount("5"))
	assert.Equal(t, 5, CoerceAmount(" 5 "))
	assert.Equal(t, 0, CoerceAmount("0"))
	assert.Equal(t, 0, CoerceAmount("-5"), "negative entry floors at 0")
	assert.Equal(t, 0, CoerceAmount("abc"))
	assert.Equal(t, 0, CoerceAmount(""))
	assert.Equal(t, 0, CoerceAmount("1.5"), "fractions are not valid amounts")
}

func TestParseAmount(t *testing.T) {
	n, err := ParseAmount("12")
	assert.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = ParseAmount(" 0 ")
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = ParseAmount("-1")
	assert.Error(t, err)

	_, err = ParseAmount("two")
	assert.Error(t, err)

	_, err = ParseAmount("")
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "2.00", FormatAmount(2))
	assert.Equal(t, "11.00", FormatAmount(11))
}
