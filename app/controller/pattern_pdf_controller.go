package controller

import (
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"patternshelf/models"
	"patternshelf/repository"
)

const maxPDFUploadBytes = 50 << 20 // 50 MiB

// PatternPDFController handles HTTP requests for PDF assets.
type PatternPDFController struct {
	pdfs     repository.PatternPDFRepositoryInterface
	patterns repository.PatternRepositoryInterface
}

// NewPatternPDFController creates a new PatternPDFController.
func NewPatternPDFController(pdfs repository.PatternPDFRepositoryInterface, patterns repository.PatternRepositoryInterface) *PatternPDFController {
	return &PatternPDFController{pdfs: pdfs, patterns: patterns}
}

// ListAll handles GET /api/pdfs
func (c *PatternPDFController) ListAll(w http.ResponseWriter, r *http.Request) {
	pdfs, err := c.pdfs.ListAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("pdf listing failed")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve PDFs")
		return
	}
	if pdfs == nil {
		pdfs = []models.PatternPDF{}
	}
	writeJSON(w, http.StatusOK, pdfs)
}

// ListForPattern handles GET /api/patterns/{id}/pdfs
func (c *PatternPDFController) ListForPattern(w http.ResponseWriter, r *http.Request, patternID int) {
	pdfs, err := c.pdfs.ListByPatternID(r.Context(), patternID)
	if err != nil {
		log.Error().Err(err).Int("pattern_id", patternID).Msg("pdf listing failed")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve PDFs")
		return
	}
	if pdfs == nil {
		pdfs = []models.PatternPDF{}
	}
	writeJSON(w, http.StatusOK, pdfs)
}

// Upload handles POST /api/patterns/{id}/pdfs with a multipart "pdf" file
// plus category and optional file_order fields.
func (c *PatternPDFController) Upload(w http.ResponseWriter, r *http.Request, patternID int) {
	pattern, err := c.patterns.FindByID(r.Context(), patternID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store PDF")
		return
	}
	if pattern == nil {
		writeError(w, http.StatusNotFound, "Pattern not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPDFUploadBytes)
	if err := r.ParseMultipartForm(maxPDFUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	category := r.FormValue("category")
	if !models.PDFCategories[category] {
		writeError(w, http.StatusBadRequest, "invalid category")
		return
	}

	var fileOrder *int
	if v := r.FormValue("file_order"); v != "" {
		order, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "file_order must be an integer")
			return
		}
		fileOrder = &order
	}

	file, _, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "pdf file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	pdf := &models.PatternPDF{
		PatternID: patternID,
		Category:  category,
		FileOrder: fileOrder,
		PDFData:   data,
	}
	created, err := c.pdfs.Insert(r.Context(), pdf)
	if err != nil {
		log.Error().Err(err).Int("pattern_id", patternID).Msg("pdf store failed")
		writeError(w, http.StatusInternalServerError, "Failed to store PDF")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/pdfs/{id}, serving the stored blob.
func (c *PatternPDFController) Get(w http.ResponseWriter, r *http.Request, id int) {
	pdf, err := c.pdfs.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve PDF")
		return
	}
	if pdf == nil || len(pdf.PDFData) == 0 {
		writeError(w, http.StatusNotFound, "PDF not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdf.PDFData)
}

// Delete handles DELETE /api/pdfs/{id}
func (c *PatternPDFController) Delete(w http.ResponseWriter, r *http.Request, id int) {
	deleted, err := c.pdfs.DeleteByID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("pdf delete failed")
		writeError(w, http.StatusInternalServerError, "Failed to delete PDF")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "PDF not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "PDF deleted"})
}
