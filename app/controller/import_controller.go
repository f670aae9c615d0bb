package controller

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"patternshelf/app/middleware"
	"patternshelf/repository"
	"patternshelf/service"
)

// ImportController handles the Drive PDF import endpoint.
type ImportController struct {
	importService service.ImportServiceInterface
	users         repository.UserRepositoryInterface
}

// NewImportController creates a new ImportController.
func NewImportController(importService service.ImportServiceInterface, users repository.UserRepositoryInterface) *ImportController {
	return &ImportController{importService: importService, users: users}
}

// Import handles POST /api/admin/pdfs/import?folderId=...
// Admin only: walks the Drive folder and attaches matching PDFs.
func (c *ImportController) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	user, err := c.users.FindByID(r.Context(), userID)
	if err != nil || user == nil || !user.IsAdmin {
		writeError(w, http.StatusForbidden, "Admin access required")
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		writeError(w, http.StatusBadRequest, "folderId is required")
		return
	}

	if c.importService == nil {
		writeError(w, http.StatusServiceUnavailable, "Drive import is not configured")
		return
	}

	stats, err := c.importService.ImportFolder(r.Context(), folderID)
	if err != nil {
		log.Error().Err(err).Str("folder_id", folderID).Msg("pdf import failed")
		writeError(w, http.StatusInternalServerError, "PDF import failed")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
