package telegram

import (
	"context"
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"finpal-guardian/internal/document/repository/sample"
	"finpal-guardian/internal/guardian"
	"finpal-guardian/internal/model"
	pkgLog "finpal-guardian/pkg/log"
	pkgResponse "finpal-guardian/pkg/response"
	pkgTelegram "finpal-guardian/pkg/telegram"
)

const headerSecret = "X-Telegram-Bot-Api-Secret-Token"

type handler struct {
	l      pkgLog.Logger
	uc     guardian.UseCase
	bot    Sender
	secret string
}

// HandleWebhook acknowledges the update at once and routes the message in the
// background; a full pipeline run can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" && subtle.ConstantTimeCompare([]byte(c.GetHeader(headerSecret)), []byte(h.secret)) != 1 {
		h.l.Warnf(ctx, "internal.guardian.delivery.telegram.HandleWebhook: bad secret from %s", c.ClientIP())
		pkgResponse.Error(c, errBadSecret, nil)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "internal.guardian.delivery.telegram.HandleWebhook: parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "internal.guardian.delivery.telegram.processMessage: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgProcessingFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles one chat message: built-in commands, hint commands
// and free text or forwards, which the router classifies.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	content := msg.Content()
	if content == "" {
		return nil
	}

	cmd, rest := parseCommand(content)
	switch cmd {
	case cmdStart:
		return h.bot.SendMessage(ctx, msg.Chat.ID, textWelcome)
	case cmdHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, textHelp)
	}

	var hint model.Category
	if cmd != "" {
		c, ok := hintCommands[cmd]
		if !ok {
			return h.bot.SendMessage(ctx, msg.Chat.ID, textHelp)
		}
		if rest == "" {
			return h.bot.SendMessage(ctx, msg.Chat.ID, usage(cmd))
		}
		hint = c
	}

	if err := h.bot.SendChatAction(ctx, msg.Chat.ID, pkgTelegram.ActionTyping); err != nil {
		h.l.Warnf(ctx, "internal.guardian.delivery.telegram.processMessage: chat action: %v", err)
	}

	env := h.uc.Route(ctx, h.inbound(msg, hint, rest))
	return h.bot.SendMessage(ctx, msg.Chat.ID, render(env))
}

func (h *handler) inbound(msg *pkgTelegram.Message, hint model.Category, text string) guardian.InboundRequest {
	req := guardian.InboundRequest{
		RouteHint: hint,
		Text:      text,
		Metadata: map[string]any{
			"channel":   "Telegram",
			"forwarded": msg.IsForwarded(),
		},
	}
	if hint == model.CategoryDocumentRisk && isSampleID(text) {
		req.Text = ""
		req.FileID = text
	}
	if msg.From != nil {
		req.Language = msg.From.LanguageCode
	}
	return req
}

func isSampleID(text string) bool {
	for _, id := range sample.IDs() {
		if text == id {
			return true
		}
	}
	return false
}
