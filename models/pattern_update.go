package models

import (
	"encoding/json"
	"fmt"
	"io"
)

// PatternCreateRequest is the JSON body accepted when creating a pattern
// manually. Brand, pattern number and title are required; everything else
// is optional.
type PatternCreateRequest struct {
	Brand         string `json:"brand"`
	PatternNumber string `json:"pattern_number"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`

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
}

// Validate checks the required fields.
func (r *PatternCreateRequest) Validate() error {
	if r.Brand == "" {
		return fmt.Errorf("brand is required")
	}
	if r.PatternNumber == "" {
		return fmt.Errorf("pattern_number is required")
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Format != "" && r.Format != FormatPaper && r.Format != FormatPDF {
		return fmt.Errorf("format must be %q or %q", FormatPaper, FormatPDF)
	}
	if r.InventoryQty < 0 {
		return fmt.Errorf("inventory_qty must not be negative")
	}
	return nil
}

// ToPattern builds a Pattern from the request.
func (r *PatternCreateRequest) ToPattern() *Pattern {
	qty := r.InventoryQty
	if qty == 0 {
		qty = 1
	}
	return &Pattern{
		Brand:                   r.Brand,
		PatternNumber:           r.PatternNumber,
		Title:                   r.Title,
		Description:             r.Description,
		ImageURL:                r.ImageURL,
		Difficulty:              r.Difficulty,
		Size:                    r.Size,
		Sex:                     r.Sex,
		ItemType:                r.ItemType,
		Format:                  r.Format,
		InventoryQty:            qty,
		CutStatus:               r.CutStatus,
		CutSize:                 r.CutSize,
		CosplayHackable:         r.CosplayHackable,
		CosplayNotes:            r.CosplayNotes,
		MaterialRecommendations: r.MaterialRecommendations,
		Yardage:                 r.Yardage,
		Notions:                 r.Notions,
		Notes:                   r.Notes,
	}
}

// PatternUpdateRequest is the allow-listed partial update for a pattern.
// Only the fields below may be changed over the API; identity fields (id,
// brand, pattern_number) and blob columns are deliberately absent, and
// unknown keys are rejected at decode time.
type PatternUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`

	Difficulty *string `json:"difficulty"`
	Size       *string `json:"size"`
	Sex        *string `json:"sex"`
	ItemType   *string `json:"item_type"`
	Format     *string `json:"format"`

	InventoryQty *int    `json:"inventory_qty"`
	CutStatus    *string `json:"cut_status"`
	CutSize      *string `json:"cut_size"`

	CosplayHackable         *bool   `json:"cosplay_hackable"`
	CosplayNotes            *string `json:"cosplay_notes"`
	MaterialRecommendations *string `json:"material_recommendations"`
	Yardage                 *string `json:"yardage"`
	Notions                 *string `json:"notions"`
	Notes                   *string `json:"notes"`
}

// DecodePatternUpdate parses an update body, rejecting unknown keys so
// callers cannot mass-assign fields outside the allow list.
func DecodePatternUpdate(r io.Reader) (*PatternUpdateRequest, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var req PatternUpdateRequest
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid update body: %w", err)
	}
	return &req, nil
}

// Validate checks the provided fields.
func (r *PatternUpdateRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if r.Format != nil && *r.Format != FormatPaper && *r.Format != FormatPDF {
		return fmt.Errorf("format must be %q or %q", FormatPaper, FormatPDF)
	}
	if r.InventoryQty != nil && *r.InventoryQty < 0 {
		return fmt.Errorf("inventory_qty must not be negative")
	}
	return nil
}

// ApplyTo copies every provided field onto the pattern.
func (r *PatternUpdateRequest) ApplyTo(p *Pattern) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.ImageURL != nil {
		p.ImageURL = *r.ImageURL
	}
	if r.Difficulty != nil {
		p.Difficulty = *r.Difficulty
	}
	if r.Size != nil {
		p.Size = *r.Size
	}
	if r.Sex != nil {
		p.Sex = *r.Sex
	}
	if r.ItemType != nil {
		p.ItemType = *r.ItemType
	}
	if r.Format != nil {
		p.Format = *r.Format
	}
	if r.InventoryQty != nil {
		p.InventoryQty = *r.InventoryQty
	}
	if r.CutStatus != nil {
		p.CutStatus = *r.CutStatus
	}
	if r.CutSize != nil {
		p.CutSize = *r.CutSize
	}
	if r.CosplayHackable != nil {
		p.CosplayHackable = *r.CosplayHackable
	}
	if r.CosplayNotes != nil {
		p.CosplayNotes = *r.CosplayNotes
	}
	if r.MaterialRecommendations != nil {
		p.MaterialRecommendations = *r.MaterialRecommendations
	}
	if r.Yardage != nil {
		p.Yardage = *r.Yardage
	}
	if r.Notions != nil {
		p.Notions = *r.Notions
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
}
