package repository

import (
	"context"
	"errors"

	"patternshelf/models"
)

// ErrDuplicatePattern is returned by PatternRepository.Insert when the
// (brand, pattern_number) unique constraint is violated, i.e. a concurrent
// writer inserted the same pattern first.
var ErrDuplicatePattern = errors.New("pattern already exists for this brand and pattern number")

// PatternListFilter holds the optional filters and paging for listing
// patterns. Zero values mean "no filter".
type PatternListFilter struct {
	Brand           string
	PatternNumber   string
	Title           string
	Difficulty      string
	ItemType        string
	CosplayHackable *bool

	Limit  int
	Offset int
}

// PatternRepositoryInterface defines the contract for pattern storage.
// Find methods return (nil, nil) when no row matches.
type PatternRepositoryInterface interface {
	FindByNaturalKey(ctx context.Context, brand, patternNumber string) (*models.Pattern, error)
	FindByID(ctx context.Context, id int) (*models.Pattern, error)
	List(ctx context.Context, filter PatternListFilter) ([]models.Pattern, int, error)
	Insert(ctx context.Context, pattern *models.Pattern) (*models.Pattern, error)
	Update(ctx context.Context, pattern *models.Pattern) (*models.Pattern, error)
	UpdateImageData(ctx context.Context, id int, data []byte) error
	DeleteByID(ctx context.Context, id int) (bool, error)
}

// PatternPDFRepositoryInterface defines the contract for PDF asset storage.
type PatternPDFRepositoryInterface interface {
	ListAll(ctx context.Context) ([]models.PatternPDF, error)
	ListByPatternID(ctx context.Context, patternID int) ([]models.PatternPDF, error)
	FindByID(ctx context.Context, id int) (*models.PatternPDF, error)
	Insert(ctx context.Context, pdf *models.PatternPDF) (*models.PatternPDF, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
	ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error)
}

// UserRepositoryInterface defines the contract for user storage.
type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.User, error)
}
