package usecase

import (
	"context"

	"finpal-guardian/internal/document"
)

// Upload stores a document for later analysis by file id.
func (uc *implUseCase) Upload(ctx context.Context, input document.UploadInput) (document.UploadOutput, error) {
	if uc.writer == nil {
		return document.UploadOutput{}, document.ErrUploadsDisabled
	}
	if len(input.Data) == 0 {
		return document.UploadOutput{}, document.ErrEmptyDocument
	}

	id, err := uc.writer.Save(ctx, input.Filename, input.Data)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v", logPrefixUpload, err)
		return document.UploadOutput{}, err
	}
	return document.UploadOutput{FileID: id, Size: len(input.Data)}, nil
}
