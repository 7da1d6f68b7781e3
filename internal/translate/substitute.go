package translate

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"wordswap/internal/domain"
)

// Substituter maps tokens through the dictionary of a language pair
type Substituter struct {
	dicts map[domain.LanguagePair]domain.Dictionary
}

// NewSubstituter copies the given dictionaries; later changes to the argument are not seen
func NewSubstituter(dicts map[domain.LanguagePair]domain.Dictionary) *Substituter {
	s := &Substituter{dicts: make(map[domain.LanguagePair]domain.Dictionary, len(dicts))}
	for pair, dict := range dicts {
		cp := make(domain.Dictionary, len(dict))
		for k, v := range dict {
			cp[k] = v
		}
		s.dicts[pair] = cp
	}
	return s
}

// Substitute translates each token, keeping unknown words as they are.
// Tokens capitalized in the source get their translation capitalized.
func (s *Substituter) Substitute(tokens []domain.Token, pair domain.LanguagePair) ([]string, error) {
	dict, ok := s.dicts[pair]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLanguagePair, pair)
	}

	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		word, found := dict[t.Word]
		if !found {
			word = t.Word
		}
		if t.Capitalized {
			word = capitalize(word)
		}
		out = append(out, word)
	}
	return out, nil
}

// HasPair reports whether a dictionary is registered for pair
func (s *Substituter) HasPair(pair domain.LanguagePair) bool {
	_, ok := s.dicts[pair]
	return ok
}

// Pairs returns the registered language pairs in sorted order
func (s *Substituter) Pairs() []domain.LanguagePair {
	pairs := make([]domain.LanguagePair, 0, len(s.dicts))
	for pair := range s.dicts {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i] < pairs[j] })
	return pairs
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
