package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshelf/models"
	"patternshelf/scraper"
)

type stubReconciler struct {
	pattern *models.Pattern
	outcome scraper.Outcome
	err     error
}

func (s *stubReconciler) Reconcile(_ context.Context, _, _ string) (*models.Pattern, scraper.Outcome, error) {
	return s.pattern, s.outcome, s.err
}

// stubFetcher lets the tests produce classified scrape errors through the
// real reconciler instead of poking at its error type.
type stubFetcher struct {
	status scraper.FetchStatus
	err    error
}

func (s stubFetcher) Fetch(_ context.Context, _ string) (scraper.FetchStatus, []byte, error) {
	return s.status, nil, s.err
}

func scrapeErr(t *testing.T, status scraper.FetchStatus, ferr error) error {
	t.Helper()
	rec := scraper.NewReconciler(stubFetcher{status: status, err: ferr}, nil, nil)
	_, _, err := rec.Reconcile(context.Background(), "Butterick", "6055")
	require.Error(t, err)
	return err
}

func unsupportedBrandErr(t *testing.T) error {
	t.Helper()
	_, err := scraper.ResolveCandidates("KwikSew", "1234")
	require.Error(t, err)
	return err
}

func doScrape(c *ScrapeController, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	c.Scrape(rr, req)
	return rr
}

func TestScrapeSuccess(t *testing.T) {
	c := NewScrapeController(&stubReconciler{
		pattern: &models.Pattern{ID: 3, Brand: "Butterick", PatternNumber: "6055", InventoryQty: 1},
		outcome: scraper.OutcomeAdded,
	})

	rr := doScrape(c, "/api/scrape?brand=Butterick&pattern_number=6055")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Outcome string          `json:"outcome"`
		Pattern json.RawMessage `json:"pattern"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "added", resp.Outcome)
	assert.Contains(t, string(resp.Pattern), `"pattern_number":"6055"`)
}

func TestScrapeMissingParams(t *testing.T) {
	c := NewScrapeController(&stubReconciler{})

	assert.Equal(t, http.StatusBadRequest, doScrape(c, "/api/scrape?brand=Butterick").Code)
	assert.Equal(t, http.StatusBadRequest, doScrape(c, "/api/scrape?pattern_number=6055").Code)
}

func TestScrapeMethodNotAllowed(t *testing.T) {
	c := NewScrapeController(&stubReconciler{})

	req := httptest.NewRequest(http.MethodPost, "/api/scrape?brand=Butterick&pattern_number=6055", nil)
	rr := httptest.NewRecorder()
	c.Scrape(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestScrapeErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unsupported brand", unsupportedBrandErr(t), http.StatusBadRequest},
		{"not found", scrapeErr(t, scraper.FetchNotFound, nil), http.StatusNotFound},
		{"transport", scrapeErr(t, scraper.FetchFailed, errors.New("refused")), http.StatusBadGateway},
		{"store", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewScrapeController(&stubReconciler{err: tt.err})
			rr := doScrape(c, "/api/scrape?brand=Butterick&pattern_number=6055")
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestScrapeUnsupportedBrandMessageNamesBrands(t *testing.T) {
	c := NewScrapeController(&stubReconciler{err: unsupportedBrandErr(t)})
	rr := doScrape(c, "/api/scrape?brand=KwikSew&pattern_number=1234")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Butterick")
}
