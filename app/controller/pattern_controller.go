package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"patternshelf/models"
	"patternshelf/repository"
	"patternshelf/service"
)

const maxImageUploadBytes = 20 << 20 // 20 MiB

// PatternController handles HTTP requests for patterns.
type PatternController struct {
	patterns repository.PatternRepositoryInterface
	pdfs     repository.PatternPDFRepositoryInterface
	images   *service.ImageService
}

// NewPatternController creates a new PatternController.
func NewPatternController(patterns repository.PatternRepositoryInterface, pdfs repository.PatternPDFRepositoryInterface, images *service.ImageService) *PatternController {
	return &PatternController{patterns: patterns, pdfs: pdfs, images: images}
}

// List handles GET /api/patterns
// Supports brand, pattern_number, title, difficulty, item_type and
// cosplay_hackable filters plus limit/offset paging.
func (c *PatternController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.PatternListFilter{
		Brand:         q.Get("brand"),
		PatternNumber: q.Get("pattern_number"),
		Title:         q.Get("title"),
		Difficulty:    q.Get("difficulty"),
		ItemType:      q.Get("item_type"),
	}

	if v := q.Get("cosplay_hackable"); v != "" {
		hackable, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "cosplay_hackable must be a boolean")
			return
		}
		filter.CosplayHackable = &hackable
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			writeError(w, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		filter.Offset = offset
	}

	items, total, err := c.patterns.List(r.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("pattern listing failed")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve patterns")
		return
	}
	if items == nil {
		items = []models.Pattern{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
	})
}

// Create handles POST /api/patterns
func (c *PatternController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.PatternCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := c.patterns.Insert(r.Context(), req.ToPattern())
	if errors.Is(err, repository.ErrDuplicatePattern) {
		writeError(w, http.StatusConflict, "A pattern with this brand and pattern number already exists")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("pattern create failed")
		writeError(w, http.StatusInternalServerError, "Failed to create pattern")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/patterns/{id}, including the attached PDF assets.
func (c *PatternController) Get(w http.ResponseWriter, r *http.Request, id int) {
	pattern, err := c.patterns.FindByID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("pattern lookup failed")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve pattern")
		return
	}
	if pattern == nil {
		writeError(w, http.StatusNotFound, "Pattern not found")
		return
	}

	pdfs, err := c.pdfs.ListByPatternID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("pdf listing failed")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve pattern")
		return
	}
	pattern.PDFs = pdfs

	writeJSON(w, http.StatusOK, pattern)
}

// Update handles PUT /api/patterns/{id} with an allow-listed partial
// update; unknown JSON keys are rejected.
func (c *PatternController) Update(w http.ResponseWriter, r *http.Request, id int) {
	req, err := models.DecodePatternUpdate(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pattern, err := c.patterns.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update pattern")
		return
	}
	if pattern == nil {
		writeError(w, http.StatusNotFound, "Pattern not found")
		return
	}

	req.ApplyTo(pattern)

	updated, err := c.patterns.Update(r.Context(), pattern)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("pattern update failed")
		writeError(w, http.StatusInternalServerError, "Failed to update pattern")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/patterns/{id}; attached PDFs are removed by
// the store's cascade.
func (c *PatternController) Delete(w http.ResponseWriter, r *http.Request, id int) {
	deleted, err := c.patterns.DeleteByID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("pattern delete failed")
		writeError(w, http.StatusInternalServerError, "Failed to delete pattern")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Pattern not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Pattern deleted"})
}

// GetImage handles GET /api/patterns/{id}/image, serving the stored blob.
func (c *PatternController) GetImage(w http.ResponseWriter, r *http.Request, id int) {
	pattern, err := c.patterns.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve image")
		return
	}
	if pattern == nil || len(pattern.ImageData) == 0 {
		writeError(w, http.StatusNotFound, "Image not found")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(pattern.ImageData)
}

// UploadImage handles POST /api/patterns/{id}/image, replacing the stored
// blob with the uploaded file (normalized to JPEG).
func (c *PatternController) UploadImage(w http.ResponseWriter, r *http.Request, id int) {
	pattern, err := c.patterns.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}
	if pattern == nil {
		writeError(w, http.StatusNotFound, "Pattern not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUploadBytes)
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	data, err := c.images.NormalizeJPEG(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Uploaded file is not a valid image")
		return
	}

	if err := c.patterns.UpdateImageData(r.Context(), id, data); err != nil {
		log.Error().Err(err).Int("id", id).Msg("image store failed")
		writeError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Image stored"})
}
