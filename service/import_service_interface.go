package service

import "context"

// ImportServiceInterface defines the contract for the Drive PDF import.
type ImportServiceInterface interface {
	ImportFolder(ctx context.Context, folderID string) (*ImportStats, error)
}
