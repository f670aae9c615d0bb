package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"patternshelf/models"
)

// ParsedPDFName is the result of parsing an import filename.
type ParsedPDFName struct {
	Brand         string
	PatternNumber string
	Category      string
	FileOrder     *int
}

var pdfExtRegex = regexp.MustCompile(`(?i)\.pdf$`)

// canonical category spellings, keyed by lower case
var categoryNames = func() map[string]string {
	m := make(map[string]string, len(models.PDFCategories))
	for name := range models.PDFCategories {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// ParsePDFFileName parses an import filename following the pattern:
// BRAND-NUMBER-CATEGORY[-ORDER].pdf
// Example: Butterick-6055-Instructions.pdf, Vogue-1234-A0-2.pdf
func ParsePDFFileName(filename string) (*ParsedPDFName, error) {
	name := pdfExtRegex.ReplaceAllString(filename, "")

	parts := strings.Split(name, "-")
	if len(parts) < 3 || len(parts) > 4 {
		return nil, fmt.Errorf("invalid filename format: expected BRAND-NUMBER-CATEGORY[-ORDER].pdf, got %q", filename)
	}

	brand := strings.TrimSpace(parts[0])
	number := strings.TrimSpace(parts[1])
	if brand == "" || number == "" {
		return nil, fmt.Errorf("invalid filename %q: empty brand or pattern number", filename)
	}

	category, ok := categoryNames[strings.ToLower(strings.TrimSpace(parts[2]))]
	if !ok {
		return nil, fmt.Errorf("invalid category %q in filename %q", parts[2], filename)
	}

	parsed := &ParsedPDFName{
		Brand:         brand,
		PatternNumber: number,
		Category:      category,
	}

	if len(parts) == 4 {
		order, err := strconv.Atoi(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid file order %q in filename %q", parts[3], filename)
		}
		parsed.FileOrder = &order
	}

	return parsed, nil
}
