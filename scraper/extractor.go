package scraper

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// PartialFields holds the per-field extraction results. Each field carries
// its own presence flag so callers can tell "found empty" from "not found";
// defaulting is the reconciler's job, not the extractor's.
type PartialFields struct {
	Title      string
	TitleFound bool

	Description      string
	DescriptionFound bool

	ImageURL   string
	ImageFound bool
}

// ExtractFields pulls title, description and image reference out of a
// vendor product page. Each field is looked up independently; a missing or
// broken tag never blocks the others, and unparseable markup simply yields
// an empty result.
func ExtractFields(body []byte) PartialFields {
	var fields PartialFields

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse vendor page")
		return fields
	}

	if content, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		fields.Title = content
		fields.TitleFound = true
	}
	if content, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		fields.Description = content
		fields.DescriptionFound = true
	}
	if content, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok {
		fields.ImageURL = content
		fields.ImageFound = true
	}

	return fields
}
