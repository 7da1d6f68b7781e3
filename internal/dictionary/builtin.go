// Package dictionary holds the built-in translation tables, reorder rules and
// part-of-speech lexicon. Every accessor returns a fresh copy.
package dictionary

import "wordswap/internal/domain"

var rules = []domain.ReorderRule{
	{Phrase: "JJ NN", Replacement: "NN JJ"},         // adjective-noun switch
	{Phrase: "DT NN", Replacement: "NN DT"},         // determiner repositioning
	{Phrase: "VB ADV NP", Replacement: "VB NP ADV"}, // adverb positioning
}

// Part-of-speech tags per word, lowercased
var lexicon = map[string][]string{
	"PRP": {"i", "you", "he", "she", "we", "they"},
	"VB":  {"love", "hate", "like", "eat", "see", "play", "drink", "run", "study"},
	"JJ":  {"good", "bad", "beautiful", "ugly", "happy", "sad", "fast", "slow"},
	"NN":  {"dogs", "cats", "food", "movie", "game", "teacher", "student", "water", "school", "music"},
	"DT":  {"the", "a", "an"},
	"ADV": {"quickly", "slowly", "carefully", "happily"},
}

var dictionaries = map[domain.LanguagePair]domain.Dictionary{
	domain.PairEnglishTamil: {
		"i": "நான்", "you": "நீ", "he": "அவன்", "she": "அவள்", "we": "நாம்", "they": "அவர்கள்",
		"love": "காதலிக்க", "hate": "வெறுக்க", "like": "பிடிக்க", "eat": "சாப்பிட", "eats": "சாப்பிட", "see": "பார்க்க",
		"drink": "குடிக்க", "run": "ஓட", "study": "படிக்க", "play": "விளையாட",
		"good": "நல்ல", "bad": "கெட்ட", "beautiful": "அழகான", "ugly": "அருவருப்பான",
		"fast": "வேகமான", "slow": "மெதுவான", "happy": "மகிழ்ச்சியான", "sad": "சோகமான",
		"dogs": "நாய்கள்", "cats": "பூனைகள்", "food": "உணவு", "movie": "திரைப்படம்",
		"game": "விளையாட்டு", "teacher": "ஆசிரியர்", "student": "மாணவன்",
		"school": "பள்ளி", "music": "இசை", "water": "நீர்",
		"the": "அந்த", "a": "ஒரு", "an": "ஒரு",
		"quickly": "வேகமாக", "slowly": "மெதுவாக", "carefully": "கவனமாக", "happily": "மகிழ்ச்சியாக",
	},
	domain.PairEnglishHindi: {
		"i": "मैं", "you": "तुम", "he": "वह", "she": "वह", "we": "हम", "they": "वे",
		"love": "प्यार", "hate": "नफरत", "like": "पसंद", "eat": "खाना", "see": "देखना",
		"drink": "पीना", "run": "दौड़ना", "study": "पढ़ना", "play": "खेलना",
		"good": "अच्छा", "bad": "बुरा", "beautiful": "सुंदर", "ugly": "भद्दा",
		"fast": "तेज़", "slow": "धीमा", "happy": "खुश", "sad": "दुखी",
		"dogs": "कुत्ते", "cats": "बिल्लियाँ", "food": "भोजन", "movie": "फिल्म",
		"game": "खेल", "teacher": "शिक्षक", "student": "छात्र",
		"school": "विद्यालय", "music": "संगीत", "water": "पानी",
		"the": "वह", "a": "एक", "an": "एक",
		"quickly": "तेज़ी से", "slowly": "धीरे", "carefully": "सावधानी से", "happily": "खुशी से",
	},
}

// Rules returns the reorder rules
func Rules() []domain.ReorderRule {
	out := make([]domain.ReorderRule, len(rules))
	copy(out, rules)
	return out
}

// Lexicon returns the word → part-of-speech tag mapping
func Lexicon() map[string]string {
	out := make(map[string]string)
	for tag, words := range lexicon {
		for _, w := range words {
			out[w] = tag
		}
	}
	return out
}

// Dictionaries returns every built-in dictionary keyed by language pair
func Dictionaries() map[domain.LanguagePair]domain.Dictionary {
	out := make(map[domain.LanguagePair]domain.Dictionary, len(dictionaries))
	for pair, dict := range dictionaries {
		cp := make(domain.Dictionary, len(dict))
		for k, v := range dict {
			cp[k] = v
		}
		out[pair] = cp
	}
	return out
}
