package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "0", FormatUnits(0))
	assert.Equal(t, "999", FormatUnits(999))
	assert.Equal(t, "5,000", FormatUnits(5000))
	assert.Equal(t, "1,250,000", FormatUnits(1250000))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$297.00", FormatMoney(297))
	assert.Equal(t, "$1,234.50", FormatMoney(1234.5))
}
