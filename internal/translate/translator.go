package translate

import (
	"strings"

	"wordswap/internal/dictionary"
	"wordswap/internal/domain"
)

// Translator runs the full pipeline. It holds no mutable state and is safe for concurrent use.
type Translator struct {
	reorderer   *Reorderer
	substituter *Substituter
}

// NewTranslator composes a reorderer and a substituter
func NewTranslator(reorderer *Reorderer, substituter *Substituter) *Translator {
	return &Translator{
		reorderer:   reorderer,
		substituter: substituter,
	}
}

// New builds a translator over dicts with the built-in reorder rules and lexicon
func New(dicts map[domain.LanguagePair]domain.Dictionary, mode domain.ReorderMode) *Translator {
	return NewTranslator(
		NewReorderer(dictionary.Rules(), mode, dictionary.Lexicon()),
		NewSubstituter(dicts),
	)
}

// Translate lowercases and splits the sentence, reorders, substitutes and joins with single spaces.
// An empty sentence yields an empty string.
func (t *Translator) Translate(sentence string, pair domain.LanguagePair) (string, error) {
	tokens := t.reorderer.Reorder(domain.Tokenize(sentence))

	words, err := t.substituter.Substitute(tokens, pair)
	if err != nil {
		return "", err
	}

	return strings.Join(words, " "), nil
}

// HasPair reports whether pair can be translated
func (t *Translator) HasPair(pair domain.LanguagePair) bool {
	return t.substituter.HasPair(pair)
}

// Pairs lists the language pairs that can be translated
func (t *Translator) Pairs() []domain.LanguagePair {
	return t.substituter.Pairs()
}
