package testutil

import (
	"wordswap/internal/dictionary"
	"wordswap/internal/domain"
	"wordswap/internal/translate"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestTranslator creates a translator over the built-in dictionaries
func NewTestTranslator(mode domain.ReorderMode) *translate.Translator {
	return translate.New(dictionary.Dictionaries(), mode)
}

// NewTestDictionaries creates a small dictionary set
func NewTestDictionaries() map[domain.LanguagePair]domain.Dictionary {
	return map[domain.LanguagePair]domain.Dictionary{
		domain.PairEnglishHindi: {"i": "मैं", "dogs": "कुत्ते"},
		domain.PairEnglishTamil: {"i": "நான்"},
	}
}
