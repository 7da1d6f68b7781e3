package service

import (
	"fmt"
	"testing"

	"wordswap/internal/domain"
	"wordswap/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDictionaryService_Load(t *testing.T) {
	stored := map[domain.LanguagePair]domain.Dictionary{
		domain.PairEnglishHindi: {"i": "मैं", "dogs": "कुत्ते", "cat": "बिल्ली"},
		domain.PairEnglishTamil: {"i": "நான்"},
	}

	tests := []struct {
		name          string
		seedError     error
		loadReturn    map[domain.LanguagePair]domain.Dictionary
		loadError     error
		expectedError bool
	}{
		{
			name:       "seed and load",
			loadReturn: stored,
		},
		{
			name:          "seed error",
			seedError:     fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:          "load error",
			loadError:     fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:          "nothing stored",
			loadReturn:    map[domain.LanguagePair]domain.Dictionary{},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockDictionaryRepository)
			mockRepo.On("SeedDictionary", mock.Anything, mock.Anything).Return(tt.seedError)
			if tt.seedError == nil {
				mockRepo.On("LoadDictionaries").Return(tt.loadReturn, tt.loadError)
			}

			service := NewDictionaryService(mockRepo, testutil.NewTestLogger())

			dicts, err := service.Load(testutil.NewTestDictionaries())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, dicts)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, stored, dicts)
				mockRepo.AssertNumberOfCalls(t, "SeedDictionary", 2)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
