package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAirportCode(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"JFK", "JFK", false},
		{" lax ", "LAX", false},
		{"", "", true},
		{"JFKX", "", true},
		{"J1K", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAirportCode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAirport)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTravelDate(t *testing.T) {
	d, err := ParseTravelDate("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseTravelDate("06/15/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestValidateUnits(t *testing.T) {
	assert.NoError(t, ValidateUnits(0))
	assert.NoError(t, ValidateUnits(50000))
	assert.ErrorIs(t, ValidateUnits(-1), ErrInvalidUnits)
}
