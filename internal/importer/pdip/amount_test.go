package pdip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePesoAmount(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1,234,567.89", 123456789},
		{"500.00", 50000},
		{"PHP 500.00", 50000},
		{"₱10,000", 1000000},
		{"0.00", 0},
		{" 2,000.5 ", 200050},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parsePesoAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePesoAmount_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12.34.56"} {
		_, err := parsePesoAmount(input)
		assert.Error(t, err, input)
	}
}
