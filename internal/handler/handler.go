package handler

import (
	"wordswap/internal/domain"
	"wordswap/internal/middleware"
	"wordswap/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// langCallbackPrefix prefixes the unique id of language selection buttons
const langCallbackPrefix = "lang_"

// Handler manages all bot interactions
type Handler struct {
	bot                *tele.Bot
	translationService *service.TranslationService
	userService        *service.UserService
	logger             *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	translationService *service.TranslationService,
	userService *service.UserService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:                bot,
		translationService: translationService,
		userService:        userService,
		logger:             logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.EnsureUser(h.userService, h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/language", h.handleLanguageMenu)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// languageMarkup returns one button per supported pair, marking the current one
func languageMarkup(pairs []domain.LanguagePair, current domain.LanguagePair) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(pairs))
	for _, pair := range pairs {
		text := pairLabel(pair)
		if pair == current {
			text = "✅ " + text
		}
		rows = append(rows, menu.Row(menu.Data(text, langCallbackPrefix+string(pair))))
	}
	menu.Inline(rows...)
	return menu
}

// pairLabel returns a human readable name for known pairs
func pairLabel(pair domain.LanguagePair) string {
	switch pair {
	case domain.PairEnglishTamil:
		return "English → Tamil"
	case domain.PairEnglishHindi:
		return "English → Hindi"
	default:
		return string(pair)
	}
}
