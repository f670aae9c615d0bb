package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"patternshelf/models"
)

// uniqueViolation is the Postgres error code for a unique constraint
// violation.
const uniqueViolation = "23505"

// patternColumns is the column list used by every pattern SELECT so the
// scan order stays in one place.
const patternColumns = `
	id, brand, pattern_number, title, description,
	image_url, image_data,
	difficulty, size, sex, item_type, format,
	inventory_qty, cut_status, cut_size,
	cosplay_hackable, cosplay_notes, material_recommendations,
	yardage, notions, notes,
	created_at, updated_at`

// PatternRepository handles database operations for patterns.
// Implements PatternRepositoryInterface.
type PatternRepository struct {
	db *sql.DB
}

// NewPatternRepository creates a new PatternRepository.
func NewPatternRepository(db *sql.DB) *PatternRepository {
	return &PatternRepository{db: db}
}

// Ensure PatternRepository implements PatternRepositoryInterface
var _ PatternRepositoryInterface = (*PatternRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPattern(row rowScanner) (*models.Pattern, error) {
	var p models.Pattern
	err := row.Scan(
		&p.ID, &p.Brand, &p.PatternNumber, &p.Title, &p.Description,
		&p.ImageURL, &p.ImageData,
		&p.Difficulty, &p.Size, &p.Sex, &p.ItemType, &p.Format,
		&p.InventoryQty, &p.CutStatus, &p.CutSize,
		&p.CosplayHackable, &p.CosplayNotes, &p.MaterialRecommendations,
		&p.Yardage, &p.Notions, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByNaturalKey retrieves a pattern by (brand, pattern_number).
// Returns (nil, nil) when no such pattern exists.
func (r *PatternRepository) FindByNaturalKey(ctx context.Context, brand, patternNumber string) (*models.Pattern, error) {
	query := `SELECT ` + patternColumns + ` FROM patterns WHERE brand = $1 AND pattern_number = $2`

	p, err := scanPattern(r.db.QueryRowContext(ctx, query, brand, patternNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find pattern by natural key: %w", err)
	}
	return p, nil
}

// FindByID retrieves a pattern by its id. Returns (nil, nil) when absent.
func (r *PatternRepository) FindByID(ctx context.Context, id int) (*models.Pattern, error) {
	query := `SELECT ` + patternColumns + ` FROM patterns WHERE id = $1`

	p, err := scanPattern(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find pattern by id: %w", err)
	}
	return p, nil
}

// List retrieves patterns matching the filter, newest first, plus the total
// match count before paging.
func (r *PatternRepository) List(ctx context.Context, filter PatternListFilter) ([]models.Pattern, int, error) {
	var conditions []string
	var args []any
	argIndex := 1

	like := func(column, value string) {
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", column, argIndex))
		args = append(args, "%"+value+"%")
		argIndex++
	}

	if filter.Brand != "" {
		like("brand", filter.Brand)
	}
	if filter.PatternNumber != "" {
		like("pattern_number", filter.PatternNumber)
	}
	if filter.Title != "" {
		like("title", filter.Title)
	}
	if filter.Difficulty != "" {
		like("difficulty", filter.Difficulty)
	}
	if filter.ItemType != "" {
		like("item_type", filter.ItemType)
	}
	if filter.CosplayHackable != nil {
		conditions = append(conditions, fmt.Sprintf("cosplay_hackable = $%d", argIndex))
		args = append(args, *filter.CosplayHackable)
		argIndex++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM patterns` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count patterns: %w", err)
	}

	query := `SELECT ` + patternColumns + ` FROM patterns` + where + ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
		argIndex++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patterns: %w", err)
	}
	defer rows.Close()

	var patterns []models.Pattern
	for rows.Next() {
		p, err := scanPattern(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan pattern: %w", err)
		}
		patterns = append(patterns, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate patterns: %w", err)
	}

	return patterns, total, nil
}

// Insert stores a new pattern and returns it with the assigned id and
// timestamps. Returns ErrDuplicatePattern when the (brand, pattern_number)
// constraint is violated.
func (r *PatternRepository) Insert(ctx context.Context, pattern *models.Pattern) (*models.Pattern, error) {
	query := `
		INSERT INTO patterns (
			brand, pattern_number, title, description,
			image_url, image_data,
			difficulty, size, sex, item_type, format,
			inventory_qty, cut_status, cut_size,
			cosplay_hackable, cosplay_notes, material_recommendations,
			yardage, notions, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		pattern.Brand, pattern.PatternNumber, pattern.Title, pattern.Description,
		pattern.ImageURL, pattern.ImageData,
		pattern.Difficulty, pattern.Size, pattern.Sex, pattern.ItemType, pattern.Format,
		pattern.InventoryQty, pattern.CutStatus, pattern.CutSize,
		pattern.CosplayHackable, pattern.CosplayNotes, pattern.MaterialRecommendations,
		pattern.Yardage, pattern.Notions, pattern.Notes,
	).Scan(&pattern.ID, &pattern.CreatedAt, &pattern.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s %s", ErrDuplicatePattern, pattern.Brand, pattern.PatternNumber)
		}
		return nil, fmt.Errorf("failed to insert pattern: %w", err)
	}

	log.Debug().
		Int("id", pattern.ID).
		Str("brand", pattern.Brand).
		Str("pattern_number", pattern.PatternNumber).
		Msg("inserted pattern")
	return pattern, nil
}

// Update overwrites every mutable field of the pattern identified by its id
// and refreshes updated_at.
func (r *PatternRepository) Update(ctx context.Context, pattern *models.Pattern) (*models.Pattern, error) {
	query := `
		UPDATE patterns SET
			title = $1, description = $2,
			image_url = $3, image_data = $4,
			difficulty = $5, size = $6, sex = $7, item_type = $8, format = $9,
			inventory_qty = $10, cut_status = $11, cut_size = $12,
			cosplay_hackable = $13, cosplay_notes = $14, material_recommendations = $15,
			yardage = $16, notions = $17, notes = $18,
			updated_at = NOW()
		WHERE id = $19
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		pattern.Title, pattern.Description,
		pattern.ImageURL, pattern.ImageData,
		pattern.Difficulty, pattern.Size, pattern.Sex, pattern.ItemType, pattern.Format,
		pattern.InventoryQty, pattern.CutStatus, pattern.CutSize,
		pattern.CosplayHackable, pattern.CosplayNotes, pattern.MaterialRecommendations,
		pattern.Yardage, pattern.Notions, pattern.Notes,
		pattern.ID,
	).Scan(&pattern.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pattern with id %d not found", pattern.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update pattern: %w", err)
	}

	log.Debug().Int("id", pattern.ID).Msg("updated pattern")
	return pattern, nil
}

// UpdateImageData replaces the stored image blob for a pattern.
func (r *PatternRepository) UpdateImageData(ctx context.Context, id int, data []byte) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE patterns SET image_data = $1, updated_at = NOW() WHERE id = $2`,
		data, id)
	if err != nil {
		return fmt.Errorf("failed to update pattern image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("pattern with id %d not found", id)
	}
	return nil
}

// DeleteByID removes a pattern; attached PDFs are removed by the foreign
// key cascade. Returns false when no pattern had that id.
func (r *PatternRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM patterns WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete pattern: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	if rowsAffected > 0 {
		log.Debug().Int("id", id).Msg("deleted pattern")
	}
	return rowsAffected > 0, nil
}
