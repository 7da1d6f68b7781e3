package domain

import "errors"

var (
	// ErrEmptyInput is returned when the sentence is empty or missing
	ErrEmptyInput = errors.New("no sentence provided")
	// ErrUnknownLanguagePair is returned when no dictionary is registered for the pair
	ErrUnknownLanguagePair = errors.New("unknown language pair")
)
