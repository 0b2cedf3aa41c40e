package document

import "errors"

var (
	ErrEmptyDocument       = errors.New("document has no readable text")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrInvalidFileID       = errors.New("invalid file id")
	ErrUnsupportedDocument = errors.New("unsupported document format")
	ErrDocumentTooLarge    = errors.New("document too large")
	ErrUploadsDisabled     = errors.New("document uploads are disabled")
)
