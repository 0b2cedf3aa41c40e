package http

import "finpal-guardian/internal/document"

type uploadResp struct {
	FileID string `json:"file_id"`
	Size   int    `json:"size"`
}

func (h *handler) newUploadResp(o document.UploadOutput) uploadResp {
	return uploadResp{FileID: o.FileID, Size: o.Size}
}
