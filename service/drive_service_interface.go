package service

// DriveServiceInterface defines the contract for Google Drive operations.
type DriveServiceInterface interface {
	ListPatternPDFs(folderID string) ([]DrivePDF, error)
	DownloadFile(fileID string) ([]byte, error)
}
