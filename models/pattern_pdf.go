package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Valid PDF asset categories: the instruction sheet plus the paper sizes a
// digital pattern is tiled for.
var PDFCategories = map[string]bool{
	"Instructions": true,
	"A0":           true,
	"A4":           true,
	"Letter":       true,
	"Projector":    true,
}

// PatternPDF is a PDF asset attached to a pattern. Either PDFData (owned
// blob) or PDFURL (fallback location) is set; the blob wins when both are.
type PatternPDF struct {
	ID        int    `json:"id"`
	PatternID int    `json:"pattern_id"`
	Category  string `json:"category"`
	FileOrder *int   `json:"file_order"`

	PDFURL  string `json:"-"`
	PDFData []byte `json:"-"`

	// DriveFileID is set for assets imported from Google Drive and is used
	// to skip files that were already imported.
	DriveFileID string `json:"drive_file_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON mirrors Pattern.MarshalJSON: has_pdf plus a pdf_url that
// points at the blob endpoint when binary data is stored.
func (p PatternPDF) MarshalJSON() ([]byte, error) {
	type alias PatternPDF

	out := struct {
		alias
		HasPDF bool   `json:"has_pdf"`
		PDFURL string `json:"pdf_url"`
	}{alias: alias(p)}

	if len(p.PDFData) > 0 {
		out.HasPDF = true
		out.PDFURL = fmt.Sprintf("/api/pdfs/%d", p.ID)
	} else {
		out.PDFURL = p.PDFURL
	}

	return json.Marshal(out)
}
