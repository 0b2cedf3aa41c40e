package http

import (
	"github.com/gin-gonic/gin"

	"finpal-guardian/pkg/response"
)

// Upload godoc
// @Summary     Upload a loan or insurance document
// @Description Stores a .txt, .md or .pdf file and returns the file_id to use in a DOCUMENT_RISK request.
// @Tags        Documents
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Document"
// @Success     200 {object} uploadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Too large"
// @Failure     415 {object} response.Resp "Unsupported format"
// @Router      /api/v1/documents [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Upload(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "internal.document.delivery.http.Upload: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUploadResp(output))
}

func (h *handler) mapRequestError(err error) error {
	if err == errMissingFile {
		return err
	}
	return h.mapError(err)
}
