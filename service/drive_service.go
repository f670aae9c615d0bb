package service

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DrivePDF is a PDF file found in the import folder.
type DrivePDF struct {
	FileID string
	Name   string
}

// DriveService handles Google Drive API operations for the PDF import.
// Implements DriveServiceInterface.
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService.
// credentialsPath is the path to a Service Account JSON file.
func NewDriveService(credentialsPath string) (*DriveService, error) {
	ctx := context.Background()

	client, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{client: client}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// ListPatternPDFs lists all PDF files in a Google Drive folder.
func (ds *DriveService) ListPatternPDFs(folderID string) ([]DrivePDF, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false and mimeType='application/pdf'", folderID)

	var pdfs []DrivePDF
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		for _, file := range r.Files {
			pdfs = append(pdfs, DrivePDF{FileID: file.Id, Name: file.Name})
		}

		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return pdfs, nil
}

// DownloadFile fetches the content of a Drive file.
func (ds *DriveService) DownloadFile(fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}
