package service

import (
	"errors"
	"strings"

	"wordswap/internal/domain"

	"go.uber.org/zap"
)

// Translator is the pipeline the service delegates to
type Translator interface {
	Translate(sentence string, pair domain.LanguagePair) (string, error)
	HasPair(pair domain.LanguagePair) bool
	Pairs() []domain.LanguagePair
}

// TranslationService validates requests and runs them through the translator
type TranslationService struct {
	translator  Translator
	defaultPair domain.LanguagePair
	logger      *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(translator Translator, defaultPair domain.LanguagePair, logger *zap.Logger) *TranslationService {
	return &TranslationService{
		translator:  translator,
		defaultPair: defaultPair,
		logger:      logger,
	}
}

// Translate translates sentence with pair, or with the default pair when pair is empty.
// It fails with domain.ErrEmptyInput or domain.ErrUnknownLanguagePair.
func (s *TranslationService) Translate(sentence string, pair domain.LanguagePair) (string, error) {
	if strings.TrimSpace(sentence) == "" {
		return "", domain.ErrEmptyInput
	}
	if pair == "" {
		pair = s.defaultPair
	}

	translated, err := s.translator.Translate(sentence, pair)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownLanguagePair) {
			s.logger.Warn("Rejected unknown language pair", zap.String("lang_pair", string(pair)))
		} else {
			s.logger.Error("Translation failed", zap.String("lang_pair", string(pair)), zap.Error(err))
		}
		return "", err
	}

	s.logger.Debug("Sentence translated",
		zap.String("lang_pair", string(pair)),
		zap.Int("length", len(sentence)),
	)

	return translated, nil
}

// DefaultPair returns the pair used when a request names none
func (s *TranslationService) DefaultPair() domain.LanguagePair {
	return s.defaultPair
}

// Pairs lists the supported language pairs
func (s *TranslationService) Pairs() []domain.LanguagePair {
	return s.translator.Pairs()
}

// IsRejection reports whether err is a request-level rejection rather than an internal failure
func IsRejection(err error) bool {
	return errors.Is(err, domain.ErrEmptyInput) || errors.Is(err, domain.ErrUnknownLanguagePair)
}
