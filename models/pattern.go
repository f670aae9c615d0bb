package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Pattern format values
const (
	FormatPaper = "Paper"
	FormatPDF   = "PDF"
)

// Pattern represents a sewing pattern in the catalog.
// (Brand, PatternNumber) is the natural key used for deduplication;
// ID is the store-assigned handle.
type Pattern struct {
	ID            int    `json:"id"`
	Brand         string `json:"brand"`
	PatternNumber string `json:"pattern_number"`
	Title         string `json:"title"`
	Description   string `json:"description"`

	// ImageURL is the fallback (externally hosted) image location.
	// When ImageData is present, the blob is authoritative and is served
	// from /api/patterns/{id}/image instead.
	ImageURL  string `json:"-"`
	ImageData []byte `json:"-"`

	Difficulty string `json:"difficulty"`
	Size       string `json:"size"`
	Sex        string `json:"sex"`
	ItemType   string `json:"item_type"`
	Format     string `json:"format"`

	InventoryQty int    `json:"inventory_qty"`
	CutStatus    string `json:"cut_status"`
	CutSize      string `json:"cut_size"`

	CosplayHackable         bool   `json:"cosplay_hackable"`
	CosplayNotes            string `json:"cosplay_notes"`
	MaterialRecommendations string `json:"material_recommendations"`
	Yardage                 string `json:"yardage"`
	Notions                 string `json:"notions"`
	Notes                   string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// PDFs holds the attached PDF assets when the pattern is loaded with
	// its children; nil otherwise.
	PDFs []PatternPDF `json:"pdf_files,omitempty"`
}

// MarshalJSON adds the presentation fields for the image: has_image and
// image_url, where image_url points at the blob endpoint when binary data
// is stored and at the fallback URL otherwise.
func (p Pattern) MarshalJSON() ([]byte, error) {
	type alias Pattern

	out := struct {
		alias
		HasImage bool   `json:"has_image"`
		ImageURL string `json:"image_url"`
	}{alias: alias(p)}

	if len(p.ImageData) > 0 {
		out.HasImage = true
		out.ImageURL = fmt.Sprintf("/api/patterns/%d/image", p.ID)
	} else {
		out.ImageURL = p.ImageURL
	}

	return json.Marshal(out)
}
