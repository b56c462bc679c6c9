package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmercado/infratrack/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestNewUTF8Reader_PlainUTF8(t *testing.T) {
	assert.Equal(t, "Barangay Niño Project", decode(t, []byte("Barangay Niño Project")))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Title,Cost")...)
	assert.Equal(t, "Title,Cost", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// "Niño" as UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE, 'N', 0x00, 'i', 0x00, 0xF1, 0x00, 'o', 0x00}
	assert.Equal(t, "Niño", decode(t, input))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// "Peña ±50%" in Windows-1252: ñ=0xF1, ±=0xB1. Invalid as UTF-8.
	input := []byte{'P', 'e', 0xF1, 'a', ' ', 0xB1, '5', '0', '%'}
	assert.Equal(t, "Peña ±50%", decode(t, input))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Equal(t, "", decode(t, nil))
}
