package handler

import (
	"errors"
	"strings"

	"wordswap/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText translates every plain text message with the sender's language pair
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	pair, err := h.userService.LanguagePair(userID)
	if err != nil {
		h.logger.Error("Failed to get language pair", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	translated, err := h.translationService.Translate(text, pair)
	if err != nil {
		return c.Send(rejectionMessage(err))
	}

	h.logger.Info("Message translated",
		zap.Int64("user_id", userID),
		zap.String("lang_pair", string(pair)),
	)

	return c.Send(translated)
}

// rejectionMessage turns a translation error into a reply for the user
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return "Please send a sentence to translate."
	case errors.Is(err, domain.ErrUnknownLanguagePair):
		return "This language is not available any more. Choose another one with /language."
	default:
		return "Something went wrong. Please try again later."
	}
}
