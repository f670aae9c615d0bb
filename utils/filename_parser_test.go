package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePDFFileName(t *testing.T) {
	parsed, err := ParsePDFFileName("Butterick-6055-Instructions.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Butterick", parsed.Brand)
	assert.Equal(t, "6055", parsed.PatternNumber)
	assert.Equal(t, "Instructions", parsed.Category)
	assert.Nil(t, parsed.FileOrder)
}

func TestParsePDFFileNameWithOrder(t *testing.T) {
	parsed, err := ParsePDFFileName("Vogue-1234-A0-2.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Vogue", parsed.Brand)
	assert.Equal(t, "1234", parsed.PatternNumber)
	assert.Equal(t, "A0", parsed.Category)
	require.NotNil(t, parsed.FileOrder)
	assert.Equal(t, 2, *parsed.FileOrder)
}

func TestParsePDFFileNameCategoryCaseInsensitive(t *testing.T) {
	parsed, err := ParsePDFFileName("Simplicity-8888-projector.PDF")
	require.NoError(t, err)
	assert.Equal(t, "Projector", parsed.Category)
}

func TestParsePDFFileNameErrors(t *testing.T) {
	cases := []string{
		"Butterick-6055.pdf",                  // too few segments
		"Butterick-6055-A0-2-extra.pdf",       // too many segments
		"Butterick-6055-Poster.pdf",           // unknown category
		"Butterick-6055-A0-two.pdf",           // non-numeric order
		"-6055-Instructions.pdf",              // empty brand
		"Butterick--Instructions.pdf",         // empty number
	}

	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePDFFileName(name)
			assert.Error(t, err)
		})
	}
}
