package testutil

import (
	"wordswap/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetLanguagePair(userID int64) (domain.LanguagePair, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.LanguagePair), args.Error(1)
}

func (m *MockUserRepository) SetLanguagePair(userID int64, pair domain.LanguagePair) error {
	args := m.Called(userID, pair)
	return args.Error(0)
}

// MockDictionaryRepository is a mock for DictionaryRepository
type MockDictionaryRepository struct {
	mock.Mock
}

func (m *MockDictionaryRepository) SeedDictionary(pair domain.LanguagePair, dict domain.Dictionary) error {
	args := m.Called(pair, dict)
	return args.Error(0)
}

func (m *MockDictionaryRepository) LoadDictionaries() (map[domain.LanguagePair]domain.Dictionary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.LanguagePair]domain.Dictionary), args.Error(1)
}

// MockTranslator is a mock for service.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(sentence string, pair domain.LanguagePair) (string, error) {
	args := m.Called(sentence, pair)
	return args.String(0), args.Error(1)
}

func (m *MockTranslator) HasPair(pair domain.LanguagePair) bool {
	args := m.Called(pair)
	return args.Bool(0)
}

func (m *MockTranslator) Pairs() []domain.LanguagePair {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.LanguagePair)
}
