package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"finpal-guardian/internal/guardian"
	pkgLog "finpal-guardian/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the part of the Bot API the handler uses.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
}

// New creates a new Telegram delivery handler. A non-empty secret must match
// the X-Telegram-Bot-Api-Secret-Token header of every update.
func New(l pkgLog.Logger, uc guardian.UseCase, bot Sender, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}
