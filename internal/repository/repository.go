package repository

import "wordswap/internal/domain"

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUserExists(userID int64) error
	GetLanguagePair(userID int64) (domain.LanguagePair, error)
	SetLanguagePair(userID int64, pair domain.LanguagePair) error
}

// DictionaryRepository defines dictionary storage operations
type DictionaryRepository interface {
	SeedDictionary(pair domain.LanguagePair, dict domain.Dictionary) error
	LoadDictionaries() (map[domain.LanguagePair]domain.Dictionary, error)
}
