package scraper

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"patternshelf/models"
	"patternshelf/repository"
)

// Outcome reports whether a reconciliation created a new catalog entry or
// merged into an existing one.
type Outcome string

const (
	OutcomeAdded   Outcome = "added"
	OutcomeUpdated Outcome = "updated"
)

// Defaults applied when the vendor page is missing a field, and
// placeholders for attributes the page never carries.
const (
	defaultDescription  = "No description available"
	placeholderImageURL = "https://via.placeholder.com/150"

	valueUnknown      = "Unknown"
	valueNotSpecified = "Not specified"
	valueUncut        = "Uncut"
)

// ImageDownloader fetches the cover image bytes for storage. Optional: a
// nil downloader leaves the record with only the fallback image URL.
type ImageDownloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// Reconciler orchestrates a scrape: resolve candidate locations, fetch,
// extract, normalize, and insert-or-update the catalog entry for the
// (brand, pattern_number) natural key.
type Reconciler struct {
	fetcher  FetcherInterface
	patterns repository.PatternRepositoryInterface
	images   ImageDownloader
}

// NewReconciler creates a Reconciler. images may be nil.
func NewReconciler(fetcher FetcherInterface, patterns repository.PatternRepositoryInterface, images ImageDownloader) *Reconciler {
	return &Reconciler{
		fetcher:  fetcher,
		patterns: patterns,
		images:   images,
	}
}

// Reconcile scrapes the vendor page for (brand, patternNumber) and merges
// the result into the catalog. All failures come back as a *ScrapeError;
// nothing is retried automatically beyond the candidate-advance on a
// not-found primary location.
func (r *Reconciler) Reconcile(ctx context.Context, brand, patternNumber string) (*models.Pattern, Outcome, error) {
	candidates, err := ResolveCandidates(brand, patternNumber)
	if err != nil {
		return nil, "", err
	}

	body, winner, err := r.fetchFirst(ctx, candidates)
	if err != nil {
		return nil, "", err
	}

	scraped := r.buildRecord(brand, patternNumber, body, winner)
	r.attachImage(ctx, scraped)

	return r.merge(ctx, scraped)
}

// fetchFirst tries the candidates in order and returns the first usable
// body together with the candidate that produced it.
func (r *Reconciler) fetchFirst(ctx context.Context, candidates []Candidate) ([]byte, Candidate, error) {
	for _, candidate := range candidates {
		status, body, err := r.fetcher.Fetch(ctx, candidate.URL)
		switch status {
		case FetchSuccess:
			return body, candidate, nil
		case FetchNotFound:
			log.Debug().Str("url", candidate.URL).Msg("candidate not found, advancing")
			continue
		default:
			return nil, Candidate{}, newError(KindTransport, err,
				"failed to reach the vendor site")
		}
	}

	return nil, Candidate{}, newError(KindNotFound, nil,
		"pattern not found at any known location")
}

// buildRecord turns the winning page into a complete pattern record,
// filling every field the extractor could not find with its documented
// default and every unobservable attribute with its placeholder.
func (r *Reconciler) buildRecord(brand, patternNumber string, body []byte, winner Candidate) *models.Pattern {
	fields := ExtractFields(body)

	title := fields.Title
	if !fields.TitleFound {
		title = fmt.Sprintf("%s %s", brand, patternNumber)
	}
	description := fields.Description
	if !fields.DescriptionFound {
		description = defaultDescription
	}
	imageURL := fields.ImageURL
	if !fields.ImageFound {
		imageURL = placeholderImageURL
	}

	log.Info().
		Str("brand", brand).
		Str("pattern_number", patternNumber).
		Bool("title_found", fields.TitleFound).
		Bool("description_found", fields.DescriptionFound).
		Bool("image_found", fields.ImageFound).
		Msg("extracted pattern fields")

	format := models.FormatPaper
	if winner.Digital {
		format = models.FormatPDF
	}

	return &models.Pattern{
		Brand:                   brand,
		PatternNumber:           patternNumber,
		Title:                   title,
		Description:             description,
		ImageURL:                imageURL,
		Format:                  format,
		Difficulty:              valueUnknown,
		Size:                    valueUnknown,
		MaterialRecommendations: valueNotSpecified,
		Yardage:                 valueNotSpecified,
		Notions:                 valueNotSpecified,
		CutStatus:               valueUncut,
		CutSize:                 valueNotSpecified,
		InventoryQty:            1,
		CosplayHackable:         false,
		CosplayNotes:            "",
		Notes:                   "",
	}
}

// attachImage downloads the cover image into the record. A failed download
// is not an error: the record keeps the fallback URL.
func (r *Reconciler) attachImage(ctx context.Context, scraped *models.Pattern) {
	if r.images == nil || scraped.ImageURL == "" {
		return
	}

	data, err := r.images.Download(ctx, scraped.ImageURL)
	if err != nil {
		log.Warn().Err(err).Str("url", scraped.ImageURL).Msg("image download failed, keeping fallback url")
		return
	}
	scraped.ImageData = data
}

// merge inserts the scraped record or overwrites the existing one for the
// same natural key. The (brand, pattern_number) unique constraint backs
// this up under concurrency: an insert that loses the race is converted to
// an update instead of surfacing a conflict.
func (r *Reconciler) merge(ctx context.Context, scraped *models.Pattern) (*models.Pattern, Outcome, error) {
	existing, err := r.patterns.FindByNaturalKey(ctx, scraped.Brand, scraped.PatternNumber)
	if err != nil {
		return nil, "", newError(KindStore, err, "failed to look up existing pattern")
	}

	if existing != nil {
		return r.update(ctx, existing, scraped)
	}

	inserted, err := r.patterns.Insert(ctx, scraped)
	if errors.Is(err, repository.ErrDuplicatePattern) {
		// Lost the race against a concurrent scrape of the same pattern.
		log.Info().
			Str("brand", scraped.Brand).
			Str("pattern_number", scraped.PatternNumber).
			Msg("concurrent insert detected, retrying as update")

		existing, ferr := r.patterns.FindByNaturalKey(ctx, scraped.Brand, scraped.PatternNumber)
		if ferr != nil {
			return nil, "", newError(KindStore, ferr, "failed to re-read pattern after insert conflict")
		}
		if existing == nil {
			return nil, "", newError(KindStore, err, "insert conflict but pattern not readable")
		}
		return r.update(ctx, existing, scraped)
	}
	if err != nil {
		return nil, "", newError(KindStore, err, "failed to store scraped pattern")
	}

	log.Info().
		Int("id", inserted.ID).
		Str("brand", inserted.Brand).
		Str("pattern_number", inserted.PatternNumber).
		Msg("pattern added from scrape")
	return inserted, OutcomeAdded, nil
}

// update overwrites every scraped field on the existing record (full
// overwrite, not a selective merge) and bumps the inventory count relative
// to the stored value.
func (r *Reconciler) update(ctx context.Context, existing, scraped *models.Pattern) (*models.Pattern, Outcome, error) {
	qty := existing.InventoryQty + 1

	merged := *scraped
	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt
	merged.InventoryQty = qty

	updated, err := r.patterns.Update(ctx, &merged)
	if err != nil {
		return nil, "", newError(KindStore, err, "failed to update existing pattern")
	}

	log.Info().
		Int("id", updated.ID).
		Str("brand", updated.Brand).
		Str("pattern_number", updated.PatternNumber).
		Int("inventory_qty", updated.InventoryQty).
		Msg("pattern updated from scrape")
	return updated, OutcomeUpdated, nil
}
