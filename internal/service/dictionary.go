package service

import (
	"fmt"

	"wordswap/internal/domain"
	"wordswap/internal/repository"

	"go.uber.org/zap"
)

// DictionaryService loads the translation dictionaries from storage at startup
type DictionaryService struct {
	dictRepo repository.DictionaryRepository
	logger   *zap.Logger
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(dictRepo repository.DictionaryRepository, logger *zap.Logger) *DictionaryService {
	return &DictionaryService{
		dictRepo: dictRepo,
		logger:   logger,
	}
}

// Load seeds the store with the given dictionaries and returns everything stored
func (s *DictionaryService) Load(seed map[domain.LanguagePair]domain.Dictionary) (map[domain.LanguagePair]domain.Dictionary, error) {
	for pair, dict := range seed {
		if err := s.dictRepo.SeedDictionary(pair, dict); err != nil {
			return nil, fmt.Errorf("failed to seed dictionary %s: %w", pair, err)
		}
	}

	dicts, err := s.dictRepo.LoadDictionaries()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionaries: %w", err)
	}
	if len(dicts) == 0 {
		return nil, fmt.Errorf("no dictionaries stored")
	}

	for pair, dict := range dicts {
		s.logger.Info("Dictionary loaded",
			zap.String("lang_pair", string(pair)),
			zap.Int("entries", len(dict)),
		)
	}

	return dicts, nil
}
