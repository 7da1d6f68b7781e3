package handler

import (
	"fmt"
	"strings"
	"unicode"

	"wordswap/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// pairFromCallback extracts the language pair of a selection button.
// The pair may arrive in the unique id or, for older clients, in the raw data.
func pairFromCallback(unique, data string) (domain.LanguagePair, bool) {
	for _, s := range []string{cleanCallbackData(unique), cleanCallbackData(data)} {
		if strings.HasPrefix(s, langCallbackPrefix) {
			pair := strings.TrimPrefix(s, langCallbackPrefix)
			// telebot joins unique and data with "|"
			if i := strings.IndexByte(pair, '|'); i >= 0 {
				pair = pair[:i]
			}
			if pair != "" {
				return domain.LanguagePair(pair), true
			}
		}
	}
	return "", false
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Same text and markup as before
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", callback.Data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	if pair, ok := pairFromCallback(callback.Unique, callback.Data); ok {
		return h.handleLanguageChosen(c, pair)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", callback.Data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleLanguageChosen stores the chosen pair and updates the menu
func (h *Handler) handleLanguageChosen(c tele.Context, pair domain.LanguagePair) error {
	userID := c.Sender().ID

	if err := h.userService.SetLanguagePair(userID, pair); err != nil {
		h.logger.Error("Failed to set language pair",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("lang_pair", string(pair)),
		)
		return c.Respond(&tele.CallbackResponse{Text: rejectionMessage(err), ShowAlert: true})
	}

	h.logger.Info("Language pair chosen",
		zap.Int64("user_id", userID),
		zap.String("lang_pair", string(pair)),
	)

	text := fmt.Sprintf("✅ Language set to %s. Send me a sentence.", pairLabel(pair))
	markup := languageMarkup(h.translationService.Pairs(), pair)

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}
