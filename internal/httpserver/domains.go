package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	documentHTTP "finpal-guardian/internal/document/delivery/http"
	guardianHTTP "finpal-guardian/internal/guardian/delivery/http"
	threatHTTP "finpal-guardian/internal/threat/delivery/http"
)

// setupGuardianDomain mounts POST /api/v1/guardian.
func (srv *HTTPServer) setupGuardianDomain(ctx context.Context, api *gin.RouterGroup) {
	h := guardianHTTP.New(srv.l, srv.guardianUC)
	guardianHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Guardian domain registered")
}

// setupDocumentDomain mounts the document routes when a document usecase is configured.
func (srv *HTTPServer) setupDocumentDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.documentUC == nil {
		return
	}
	h := documentHTTP.New(srv.l, srv.documentUC)
	documentHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Document domain registered")
}

func (srv *HTTPServer) setupThreatDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.threatUC == nil {
		return
	}
	h := threatHTTP.New(srv.l, srv.threatUC)
	threatHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Threat domain registered")
}
