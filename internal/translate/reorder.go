// Package translate implements the word-for-word translation pipeline:
// tokenize, reorder adjacent pairs, substitute through a dictionary, join.
package translate

import "wordswap/internal/domain"

// Reorderer swaps adjacent tokens whose joined key matches a rule phrase
type Reorderer struct {
	phrases map[string]string
	// tags is nil in literal mode
	tags map[string]string
}

// NewReorderer builds a reorderer. The lexicon is only consulted in tagged mode.
func NewReorderer(rules []domain.ReorderRule, mode domain.ReorderMode, lexicon map[string]string) *Reorderer {
	r := &Reorderer{phrases: make(map[string]string, len(rules))}
	for _, rule := range rules {
		r.phrases[rule.Phrase] = rule.Replacement
	}
	if mode == domain.ReorderTagged {
		r.tags = make(map[string]string, len(lexicon))
		for word, tag := range lexicon {
			r.tags[word] = tag
		}
	}
	return r
}

func (r *Reorderer) key(t domain.Token) string {
	if r.tags != nil {
		if tag, ok := r.tags[t.Word]; ok {
			return tag
		}
	}
	return t.Word
}

// Reorder scans every adjacent pair left to right. A matching pair is emitted
// swapped, but the scan still visits the second token of that pair on the next
// step. The last input token is appended only if its word is not already in the output.
func (r *Reorderer) Reorder(tokens []domain.Token) []domain.Token {
	out := make([]domain.Token, 0, len(tokens)+1)
	if len(tokens) == 0 {
		return out
	}

	for i := 0; i < len(tokens)-1; i++ {
		phrase := r.key(tokens[i]) + " " + r.key(tokens[i+1])
		if _, ok := r.phrases[phrase]; ok {
			out = append(out, tokens[i+1], tokens[i])
		} else {
			out = append(out, tokens[i])
		}
	}

	last := tokens[len(tokens)-1]
	for _, t := range out {
		if t.Word == last.Word {
			return out
		}
	}
	return append(out, last)
}
