package scraper

import (
	"fmt"
	"sort"
	"strings"
)

const vendorBaseURL = "https://www.simplicity.com"

// brandMapping ties a brand name to its URL path segment and the short
// code that precedes the pattern number in the page path.
type brandMapping struct {
	segment string
	code    string
}

// brandMappings is the closed set of publishers hosted on the vendor site.
var brandMappings = map[string]brandMapping{
	"Butterick":  {segment: "butterick", code: "b"},
	"Vogue":      {segment: "vogue-patterns", code: "v"},
	"Simplicity": {segment: "simplicity", code: "s"},
	"McCall's":   {segment: "mccalls", code: "m"},
	"Know Me":    {segment: "know-me", code: "me"},
	"New Look":   {segment: "new-look", code: "n"},
	"Burda":      {segment: "burda-style", code: "bur"},
}

// Candidate is one possible location of a pattern's page. Digital marks
// the secondary "pd" edition, which only exists for download-only patterns
// and implies format "PDF" when it is the candidate that succeeds.
type Candidate struct {
	URL     string
	Digital bool
}

// SupportedBrands returns the known brand names, sorted for stable error
// messages.
func SupportedBrands() []string {
	brands := make([]string, 0, len(brandMappings))
	for brand := range brandMappings {
		brands = append(brands, brand)
	}
	sort.Strings(brands)
	return brands
}

// ResolveCandidates maps (brand, patternNumber) to the ordered candidate
// locations: the paper edition first, the digital download edition second.
// The order is significant; the digital candidate is only meant to be tried
// after a not-found on the primary.
func ResolveCandidates(brand, patternNumber string) ([]Candidate, error) {
	mapping, ok := brandMappings[brand]
	if !ok {
		return nil, newError(KindUnsupportedBrand, nil,
			"brand %q is not supported (known brands: %s)",
			brand, strings.Join(SupportedBrands(), ", "))
	}

	return []Candidate{
		{URL: fmt.Sprintf("%s/%s/%s%s/", vendorBaseURL, mapping.segment, mapping.code, patternNumber)},
		{URL: fmt.Sprintf("%s/%s/pd%s%s/", vendorBaseURL, mapping.segment, mapping.code, patternNumber), Digital: true},
	}, nil
}
