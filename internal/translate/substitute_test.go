package translate

import (
	"errors"
	"testing"

	"wordswap/internal/dictionary"
	"wordswap/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituter_Substitute(t *testing.T) {
	s := NewSubstituter(dictionary.Dictionaries())

	tests := []struct {
		name     string
		tokens   []domain.Token
		pair     domain.LanguagePair
		expected []string
	}{
		{
			name:     "known words hindi",
			tokens:   tokens("i", "love", "dogs"),
			pair:     domain.PairEnglishHindi,
			expected: []string{"मैं", "प्यार", "कुत्ते"},
		},
		{
			name:     "known words tamil",
			tokens:   tokens("we", "eat", "food"),
			pair:     domain.PairEnglishTamil,
			expected: []string{"நாம்", "சாப்பிட", "உணவு"},
		},
		{
			name:     "unknown word passes through",
			tokens:   tokens("i", "love", "pizza"),
			pair:     domain.PairEnglishHindi,
			expected: []string{"मैं", "प्यार", "pizza"},
		},
		{
			name:     "capitalized unknown word",
			tokens:   []domain.Token{{Word: "hello", Capitalized: true}},
			pair:     domain.PairEnglishHindi,
			expected: []string{"Hello"},
		},
		{
			name:     "capitalized word in caseless script",
			tokens:   []domain.Token{{Word: "i", Capitalized: true}},
			pair:     domain.PairEnglishTamil,
			expected: []string{"நான்"},
		},
		{
			name:     "empty tokens",
			tokens:   nil,
			pair:     domain.PairEnglishTamil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.Substitute(tt.tokens, tt.pair)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSubstituter_EveryKeyMapsToItsValue(t *testing.T) {
	dicts := dictionary.Dictionaries()
	s := NewSubstituter(dicts)

	for pair, dict := range dicts {
		for k, v := range dict {
			result, err := s.Substitute(tokens(k), pair)
			require.NoError(t, err)
			assert.Equal(t, []string{v}, result, "pair %s key %s", pair, k)
		}
	}
}

func TestSubstituter_UnknownPair(t *testing.T) {
	s := NewSubstituter(dictionary.Dictionaries())

	result, err := s.Substitute(tokens("i"), "fr_de")

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrUnknownLanguagePair))
	assert.Contains(t, err.Error(), "fr_de")
}

func TestSubstituter_CopiesDictionaries(t *testing.T) {
	dicts := map[domain.LanguagePair]domain.Dictionary{
		"en_xx": {"dog": "hund"},
	}
	s := NewSubstituter(dicts)

	dicts["en_xx"]["dog"] = "changed"
	dicts["en_yy"] = domain.Dictionary{}

	result, err := s.Substitute(tokens("dog"), "en_xx")
	require.NoError(t, err)
	assert.Equal(t, []string{"hund"}, result)
	assert.False(t, s.HasPair("en_yy"))
}

func TestSubstituter_Pairs(t *testing.T) {
	s := NewSubstituter(dictionary.Dictionaries())

	assert.Equal(t, []domain.LanguagePair{domain.PairEnglishHindi, domain.PairEnglishTamil}, s.Pairs())
	assert.True(t, s.HasPair(domain.PairEnglishTamil))
	assert.False(t, s.HasPair("fr_de"))
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "Hello"},
		{"hELLO", "HELLO"},
		{"", ""},
		{"éclair", "Éclair"},
		{"मैं", "मैं"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, capitalize(tt.input))
		})
	}
}
