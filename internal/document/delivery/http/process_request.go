package http

import (
	"io"

	"finpal-guardian/internal/document"
	"finpal-guardian/internal/document/repository/file"

	"github.com/gin-gonic/gin"
)

// processUploadReq reads the "file" multipart field.
func (h *handler) processUploadReq(c *gin.Context) (document.UploadInput, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return document.UploadInput{}, errMissingFile
	}
	if fh.Size > file.MaxFileSize {
		return document.UploadInput{}, document.ErrDocumentTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return document.UploadInput{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, file.MaxFileSize+1))
	if err != nil {
		return document.UploadInput{}, err
	}
	return document.UploadInput{Filename: fh.Filename, Data: data}, nil
}
