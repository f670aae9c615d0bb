package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"patternshelf/models"
	"patternshelf/repository"
	"patternshelf/utils"
)

// ImportStats summarizes one Drive import run.
// Imported = new assets attached, Skipped = Drive files already imported,
// Unmatched = files whose name did not parse or whose pattern is not in
// the catalog, Total = PDF files seen in the folder.
type ImportStats struct {
	Imported  int `json:"imported"`
	Skipped   int `json:"skipped"`
	Unmatched int `json:"unmatched"`
	Total     int `json:"total"`
}

// ImportService attaches PDF files from a Google Drive folder to catalog
// entries, matching on the BRAND-NUMBER-CATEGORY[-ORDER].pdf filename
// convention. Implements ImportServiceInterface.
type ImportService struct {
	driveService DriveServiceInterface
	patterns     repository.PatternRepositoryInterface
	pdfs         repository.PatternPDFRepositoryInterface
}

// NewImportService creates a new ImportService.
func NewImportService(driveService DriveServiceInterface, patterns repository.PatternRepositoryInterface, pdfs repository.PatternPDFRepositoryInterface) *ImportService {
	return &ImportService{
		driveService: driveService,
		patterns:     patterns,
		pdfs:         pdfs,
	}
}

// Ensure ImportService implements ImportServiceInterface
var _ ImportServiceInterface = (*ImportService)(nil)

// ImportFolder processes every PDF in the folder. Files that were already
// imported (by Drive file id) are skipped; files that don't match a
// catalog entry are counted and left alone so a later import can pick
// them up.
func (s *ImportService) ImportFolder(ctx context.Context, folderID string) (*ImportStats, error) {
	files, err := s.driveService.ListPatternPDFs(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drive folder: %w", err)
	}

	stats := &ImportStats{Total: len(files)}
	log.Info().Str("folder_id", folderID).Int("total", stats.Total).Msg("starting pdf import")

	for _, file := range files {
		exists, err := s.pdfs.ExistsByDriveFileID(ctx, file.FileID)
		if err != nil {
			return stats, fmt.Errorf("failed to check drive file %s: %w", file.FileID, err)
		}
		if exists {
			stats.Skipped++
			continue
		}

		parsed, err := utils.ParsePDFFileName(file.Name)
		if err != nil {
			log.Warn().Err(err).Str("file", file.Name).Msg("skipping file with unparseable name")
			stats.Unmatched++
			continue
		}

		pattern, err := s.patterns.FindByNaturalKey(ctx, parsed.Brand, parsed.PatternNumber)
		if err != nil {
			return stats, fmt.Errorf("failed to look up pattern for %s: %w", file.Name, err)
		}
		if pattern == nil {
			log.Warn().
				Str("file", file.Name).
				Str("brand", parsed.Brand).
				Str("pattern_number", parsed.PatternNumber).
				Msg("no catalog entry for imported pdf")
			stats.Unmatched++
			continue
		}

		data, err := s.driveService.DownloadFile(file.FileID)
		if err != nil {
			log.Error().Err(err).Str("file", file.Name).Msg("failed to download pdf, continuing")
			stats.Unmatched++
			continue
		}

		pdf := &models.PatternPDF{
			PatternID:   pattern.ID,
			Category:    parsed.Category,
			FileOrder:   parsed.FileOrder,
			PDFData:     data,
			DriveFileID: file.FileID,
		}
		if _, err := s.pdfs.Insert(ctx, pdf); err != nil {
			return stats, fmt.Errorf("failed to store pdf for %s: %w", file.Name, err)
		}

		log.Info().
			Str("file", file.Name).
			Int("pattern_id", pattern.ID).
			Str("category", parsed.Category).
			Msg("imported pdf asset")
		stats.Imported++
	}

	log.Info().
		Int("imported", stats.Imported).
		Int("skipped", stats.Skipped).
		Int("unmatched", stats.Unmatched).
		Int("total", stats.Total).
		Msg("pdf import finished")
	return stats, nil
}
