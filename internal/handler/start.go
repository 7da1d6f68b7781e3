package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	pair, err := h.userService.LanguagePair(userID)
	if err != nil {
		h.logger.Error("Failed to get language pair", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	text := fmt.Sprintf(
		"👋 Send me an English sentence and I will translate it word by word.\n\nCurrent language: %s\nChange it below or with /language.",
		pairLabel(pair),
	)
	return c.Send(text, languageMarkup(h.translationService.Pairs(), pair))
}

// handleLanguageMenu handles /language command
func (h *Handler) handleLanguageMenu(c tele.Context) error {
	pair, err := h.userService.LanguagePair(c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to get language pair", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	return c.Send("🌐 Choose a language:", languageMarkup(h.translationService.Pairs(), pair))
}
