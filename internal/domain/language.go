package domain

// LanguagePair identifies a source→target dictionary, e.g. "en_ta"
type LanguagePair string

const (
	PairEnglishTamil LanguagePair = "en_ta"
	PairEnglishHindi LanguagePair = "en_hi"
)

// Dictionary maps a lowercase source word to its target word
type Dictionary map[string]string

// ReorderRule swaps two adjacent tokens whose joined key equals Phrase
type ReorderRule struct {
	Phrase      string
	Replacement string
}

// ReorderMode selects how tokens are keyed when matching reorder rules
type ReorderMode string

const (
	// ReorderLiteral matches rule phrases against the surface words
	ReorderLiteral ReorderMode = "literal"
	// ReorderTagged matches rule phrases against part-of-speech tags
	ReorderTagged ReorderMode = "tagged"
)
