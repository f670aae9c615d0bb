package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePatternUpdateRejectsUnknownKeys(t *testing.T) {
	_, err := DecodePatternUpdate(strings.NewReader(`{"brand":"Vogue"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brand")

	_, err = DecodePatternUpdate(strings.NewReader(`{"id":9}`))
	require.Error(t, err)

	_, err = DecodePatternUpdate(strings.NewReader(`{"image_data":"AAAA"}`))
	require.Error(t, err)
}

func TestDecodePatternUpdateAllowListed(t *testing.T) {
	req, err := DecodePatternUpdate(strings.NewReader(`{"title":"New Title","inventory_qty":4,"cosplay_hackable":true}`))
	require.NoError(t, err)

	require.NotNil(t, req.Title)
	assert.Equal(t, "New Title", *req.Title)
	require.NotNil(t, req.InventoryQty)
	assert.Equal(t, 4, *req.InventoryQty)
	require.NotNil(t, req.CosplayHackable)
	assert.True(t, *req.CosplayHackable)
	assert.Nil(t, req.Description)
}

func TestPatternUpdateValidate(t *testing.T) {
	empty := ""
	badFormat := "Cassette"
	negative := -1
	pdf := FormatPDF

	assert.Error(t, (&PatternUpdateRequest{Title: &empty}).Validate())
	assert.Error(t, (&PatternUpdateRequest{Format: &badFormat}).Validate())
	assert.Error(t, (&PatternUpdateRequest{InventoryQty: &negative}).Validate())
	assert.NoError(t, (&PatternUpdateRequest{Format: &pdf}).Validate())
	assert.NoError(t, (&PatternUpdateRequest{}).Validate())
}

func TestPatternUpdateApplyToOnlyTouchesProvidedFields(t *testing.T) {
	p := Pattern{
		Brand:         "Butterick",
		PatternNumber: "6055",
		Title:         "Old",
		Description:   "Old description",
		InventoryQty:  2,
	}

	title := "New"
	qty := 5
	req := PatternUpdateRequest{Title: &title, InventoryQty: &qty}
	req.ApplyTo(&p)

	assert.Equal(t, "New", p.Title)
	assert.Equal(t, 5, p.InventoryQty)
	assert.Equal(t, "Old description", p.Description)
	assert.Equal(t, "Butterick", p.Brand)
	assert.Equal(t, "6055", p.PatternNumber)
}

func TestPatternCreateRequestValidate(t *testing.T) {
	valid := PatternCreateRequest{Brand: "Vogue", PatternNumber: "1234", Title: "Gown"}
	assert.NoError(t, valid.Validate())

	missingBrand := valid
	missingBrand.Brand = ""
	assert.Error(t, missingBrand.Validate())

	missingNumber := valid
	missingNumber.PatternNumber = ""
	assert.Error(t, missingNumber.Validate())

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, missingTitle.Validate())

	badFormat := valid
	badFormat.Format = "VHS"
	assert.Error(t, badFormat.Validate())
}

func TestPatternCreateRequestDefaultsQtyToOne(t *testing.T) {
	req := PatternCreateRequest{Brand: "Vogue", PatternNumber: "1234", Title: "Gown"}
	assert.Equal(t, 1, req.ToPattern().InventoryQty)

	req.InventoryQty = 3
	assert.Equal(t, 3, req.ToPattern().InventoryQty)
}
