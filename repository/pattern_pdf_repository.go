package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"patternshelf/models"
)

const pdfColumns = `
	id, pattern_id, category, file_order,
	pdf_url, pdf_data, drive_file_id,
	created_at, updated_at`

// PatternPDFRepository handles database operations for PDF assets.
// Implements PatternPDFRepositoryInterface.
type PatternPDFRepository struct {
	db *sql.DB
}

// NewPatternPDFRepository creates a new PatternPDFRepository.
func NewPatternPDFRepository(db *sql.DB) *PatternPDFRepository {
	return &PatternPDFRepository{db: db}
}

// Ensure PatternPDFRepository implements PatternPDFRepositoryInterface
var _ PatternPDFRepositoryInterface = (*PatternPDFRepository)(nil)

func scanPDF(row rowScanner) (*models.PatternPDF, error) {
	var pdf models.PatternPDF
	err := row.Scan(
		&pdf.ID, &pdf.PatternID, &pdf.Category, &pdf.FileOrder,
		&pdf.PDFURL, &pdf.PDFData, &pdf.DriveFileID,
		&pdf.CreatedAt, &pdf.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pdf, nil
}

func (r *PatternPDFRepository) queryPDFs(ctx context.Context, query string, args ...any) ([]models.PatternPDF, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pdfs: %w", err)
	}
	defer rows.Close()

	var pdfs []models.PatternPDF
	for rows.Next() {
		pdf, err := scanPDF(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pdf: %w", err)
		}
		pdfs = append(pdfs, *pdf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pdfs: %w", err)
	}
	return pdfs, nil
}

// ListAll retrieves every PDF asset.
func (r *PatternPDFRepository) ListAll(ctx context.Context) ([]models.PatternPDF, error) {
	query := `SELECT ` + pdfColumns + ` FROM pattern_pdfs ORDER BY pattern_id, file_order NULLS LAST, id`
	return r.queryPDFs(ctx, query)
}

// ListByPatternID retrieves the PDF assets of one pattern in file order.
func (r *PatternPDFRepository) ListByPatternID(ctx context.Context, patternID int) ([]models.PatternPDF, error) {
	query := `SELECT ` + pdfColumns + ` FROM pattern_pdfs WHERE pattern_id = $1 ORDER BY file_order NULLS LAST, id`
	return r.queryPDFs(ctx, query, patternID)
}

// FindByID retrieves a PDF asset by id. Returns (nil, nil) when absent.
func (r *PatternPDFRepository) FindByID(ctx context.Context, id int) (*models.PatternPDF, error) {
	query := `SELECT ` + pdfColumns + ` FROM pattern_pdfs WHERE id = $1`

	pdf, err := scanPDF(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find pdf by id: %w", err)
	}
	return pdf, nil
}

// Insert stores a new PDF asset and returns it with the assigned id and
// timestamps.
func (r *PatternPDFRepository) Insert(ctx context.Context, pdf *models.PatternPDF) (*models.PatternPDF, error) {
	query := `
		INSERT INTO pattern_pdfs (pattern_id, category, file_order, pdf_url, pdf_data, drive_file_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		pdf.PatternID, pdf.Category, pdf.FileOrder,
		pdf.PDFURL, pdf.PDFData, pdf.DriveFileID,
	).Scan(&pdf.ID, &pdf.CreatedAt, &pdf.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert pdf: %w", err)
	}

	log.Debug().
		Int("id", pdf.ID).
		Int("pattern_id", pdf.PatternID).
		Str("category", pdf.Category).
		Msg("inserted pdf asset")
	return pdf, nil
}

// DeleteByID removes a PDF asset. Returns false when no asset had that id.
func (r *PatternPDFRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pattern_pdfs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete pdf: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// ExistsByDriveFileID checks whether a Drive file was already imported.
func (r *PatternPDFRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pattern_pdfs WHERE drive_file_id = $1)`
	if err := r.db.QueryRowContext(ctx, query, driveFileID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check drive file id: %w", err)
	}
	return exists, nil
}
