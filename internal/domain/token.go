package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a single lowercased word of an input sentence
type Token struct {
	Word string
	// Capitalized records whether the word started with an upper-case letter in the source sentence
	Capitalized bool
}

// Tokenize lowercases the sentence and splits it on whitespace
func Tokenize(sentence string) []Token {
	fields := strings.Fields(sentence)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		first, _ := utf8.DecodeRuneInString(f)
		tokens = append(tokens, Token{
			Word:        strings.ToLower(f),
			Capitalized: unicode.IsUpper(first),
		})
	}
	return tokens
}

// Words returns the plain word of every token
func Words(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Word
	}
	return words
}
