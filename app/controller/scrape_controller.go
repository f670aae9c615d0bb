package controller

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"patternshelf/models"
	"patternshelf/scraper"
)

// ReconcilerInterface is what the scrape endpoint needs from the scraper.
type ReconcilerInterface interface {
	Reconcile(ctx context.Context, brand, patternNumber string) (*models.Pattern, scraper.Outcome, error)
}

// ScrapeController handles the scrape-and-upsert endpoint.
type ScrapeController struct {
	reconciler ReconcilerInterface
}

// NewScrapeController creates a new ScrapeController.
func NewScrapeController(reconciler ReconcilerInterface) *ScrapeController {
	return &ScrapeController{reconciler: reconciler}
}

// Scrape handles GET /api/scrape?brand=...&pattern_number=...
// Responds with the merged record and an outcome of "added" or "updated",
// or with a status code matching the error class: 400 for an unsupported
// brand, 404 when the vendor has no such pattern, 502 for vendor transport
// failures and 500 for store failures.
func (c *ScrapeController) Scrape(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	brand := r.URL.Query().Get("brand")
	patternNumber := r.URL.Query().Get("pattern_number")
	if brand == "" || patternNumber == "" {
		writeError(w, http.StatusBadRequest, "brand and pattern_number are required")
		return
	}

	pattern, outcome, err := c.reconciler.Reconcile(r.Context(), brand, patternNumber)
	if err != nil {
		c.writeScrapeError(w, brand, patternNumber, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"outcome": outcome,
		"pattern": pattern,
	})
}

func (c *ScrapeController) writeScrapeError(w http.ResponseWriter, brand, patternNumber string, err error) {
	log.Error().
		Err(err).
		Str("brand", brand).
		Str("pattern_number", patternNumber).
		Msg("scrape failed")

	switch scraper.KindOf(err) {
	case scraper.KindUnsupportedBrand:
		writeError(w, http.StatusBadRequest, err.Error())
	case scraper.KindNotFound:
		writeError(w, http.StatusNotFound, "Pattern not found at the vendor site")
	case scraper.KindTransport:
		writeError(w, http.StatusBadGateway, "Failed to reach the vendor site")
	default:
		writeError(w, http.StatusInternalServerError, "Failed to store scraped pattern")
	}
}
