package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshelf/models"
	"patternshelf/repository"
)

type fakeDrive struct {
	files     []DrivePDF
	listErr   error
	downloads map[string][]byte
}

func (d *fakeDrive) ListPatternPDFs(_ string) ([]DrivePDF, error) {
	return d.files, d.listErr
}

func (d *fakeDrive) DownloadFile(fileID string) ([]byte, error) {
	data, ok := d.downloads[fileID]
	if !ok {
		return nil, errors.New("download failed")
	}
	return data, nil
}

type fakePatternLookup struct {
	repository.PatternRepositoryInterface
	byKey map[string]*models.Pattern
}

func (r *fakePatternLookup) FindByNaturalKey(_ context.Context, brand, patternNumber string) (*models.Pattern, error) {
	return r.byKey[brand+"|"+patternNumber], nil
}

type fakePDFStore struct {
	repository.PatternPDFRepositoryInterface
	existing map[string]bool
	inserted []models.PatternPDF
}

func (r *fakePDFStore) ExistsByDriveFileID(_ context.Context, driveFileID string) (bool, error) {
	return r.existing[driveFileID], nil
}

func (r *fakePDFStore) Insert(_ context.Context, pdf *models.PatternPDF) (*models.PatternPDF, error) {
	r.inserted = append(r.inserted, *pdf)
	copied := *pdf
	copied.ID = len(r.inserted)
	return &copied, nil
}

func TestImportFolder(t *testing.T) {
	drive := &fakeDrive{
		files: []DrivePDF{
			{FileID: "f1", Name: "Butterick-6055-Instructions.pdf"}, // new, matches
			{FileID: "f2", Name: "Butterick-6055-A0-1.pdf"},         // already imported
			{FileID: "f3", Name: "Vogue-9999-Letter.pdf"},           // no catalog entry
			{FileID: "f4", Name: "notes.txt.pdf"},                   // unparseable name
		},
		downloads: map[string][]byte{"f1": []byte("pdf-bytes")},
	}
	patterns := &fakePatternLookup{byKey: map[string]*models.Pattern{
		"Butterick|6055": {ID: 11, Brand: "Butterick", PatternNumber: "6055"},
	}}
	pdfs := &fakePDFStore{existing: map[string]bool{"f2": true}}

	svc := NewImportService(drive, patterns, pdfs)
	stats, err := svc.ImportFolder(context.Background(), "folder-1")
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Imported)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 2, stats.Unmatched)

	require.Len(t, pdfs.inserted, 1)
	got := pdfs.inserted[0]
	assert.Equal(t, 11, got.PatternID)
	assert.Equal(t, "Instructions", got.Category)
	assert.Equal(t, "f1", got.DriveFileID)
	assert.Equal(t, []byte("pdf-bytes"), got.PDFData)
	assert.Nil(t, got.FileOrder)
}

func TestImportFolderDownloadFailureCountsUnmatched(t *testing.T) {
	drive := &fakeDrive{
		files:     []DrivePDF{{FileID: "f1", Name: "Butterick-6055-Instructions.pdf"}},
		downloads: map[string][]byte{},
	}
	patterns := &fakePatternLookup{byKey: map[string]*models.Pattern{
		"Butterick|6055": {ID: 11, Brand: "Butterick", PatternNumber: "6055"},
	}}
	pdfs := &fakePDFStore{existing: map[string]bool{}}

	svc := NewImportService(drive, patterns, pdfs)
	stats, err := svc.ImportFolder(context.Background(), "folder-1")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Unmatched)
	assert.Zero(t, stats.Imported)
	assert.Empty(t, pdfs.inserted)
}

func TestImportFolderListFailure(t *testing.T) {
	drive := &fakeDrive{listErr: errors.New("drive unavailable")}
	svc := NewImportService(drive, &fakePatternLookup{}, &fakePDFStore{})

	_, err := svc.ImportFolder(context.Background(), "folder-1")
	assert.Error(t, err)
}
