package document

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze runs source resolution, extraction, scoring and narration.
	Analyze(ctx context.Context, req Request) (Summary, error)
	// Upload stores a document and returns the identifier to pass as file_id.
	Upload(ctx context.Context, input UploadInput) (UploadOutput, error)
}
