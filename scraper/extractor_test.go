package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFieldsCompletePage(t *testing.T) {
	body := []byte(`<html><head>
		<meta property="og:title" content="Butterick 6055 Misses' Dress" />
		<meta name="description" content="A fitted dress with flared skirt." />
		<meta property="og:image" content="https://cdn.example.com/b6055.jpg" />
	</head><body></body></html>`)

	fields := ExtractFields(body)

	assert.True(t, fields.TitleFound)
	assert.Equal(t, "Butterick 6055 Misses' Dress", fields.Title)
	assert.True(t, fields.DescriptionFound)
	assert.Equal(t, "A fitted dress with flared skirt.", fields.Description)
	assert.True(t, fields.ImageFound)
	assert.Equal(t, "https://cdn.example.com/b6055.jpg", fields.ImageURL)
}

func TestExtractFieldsPartialPage(t *testing.T) {
	body := []byte(`<html><head>
		<meta property="og:title" content="Vogue 1234" />
	</head><body></body></html>`)

	fields := ExtractFields(body)

	assert.True(t, fields.TitleFound)
	assert.Equal(t, "Vogue 1234", fields.Title)
	assert.False(t, fields.DescriptionFound)
	assert.Empty(t, fields.Description)
	assert.False(t, fields.ImageFound)
	assert.Empty(t, fields.ImageURL)
}

func TestExtractFieldsEmptyContentStillCountsAsFound(t *testing.T) {
	body := []byte(`<html><head>
		<meta property="og:title" content="" />
	</head></html>`)

	fields := ExtractFields(body)

	assert.True(t, fields.TitleFound)
	assert.Empty(t, fields.Title)
}

func TestExtractFieldsGarbageInput(t *testing.T) {
	fields := ExtractFields([]byte("not html at all \x00\x01"))

	assert.False(t, fields.TitleFound)
	assert.False(t, fields.DescriptionFound)
	assert.False(t, fields.ImageFound)
}

func TestExtractFieldsEmptyBody(t *testing.T) {
	fields := ExtractFields(nil)

	assert.False(t, fields.TitleFound)
	assert.False(t, fields.DescriptionFound)
	assert.False(t, fields.ImageFound)
}
