package postgres

import (
	"database/sql"
	"fmt"
	"sort"

	"wordswap/internal/domain"
)

// DictionaryRepo implements repository.DictionaryRepository
type DictionaryRepo struct {
	db *sql.DB
}

// NewDictionaryRepo creates a new dictionary repository
func NewDictionaryRepo(db *sql.DB) *DictionaryRepo {
	return &DictionaryRepo{db: db}
}

// SeedDictionary inserts every entry that is not stored yet.
// Existing rows are left untouched so edits made in the database win.
func (r *DictionaryRepo) SeedDictionary(pair domain.LanguagePair, dict domain.Dictionary) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		INSERT INTO dictionary_entries (lang_pair, source_word, target_word)
		VALUES ($1, $2, $3)
		ON CONFLICT (lang_pair, source_word) DO NOTHING
	`

	words := make([]string, 0, len(dict))
	for w := range dict {
		words = append(words, w)
	}
	sort.Strings(words)

	for _, w := range words {
		if _, err := tx.Exec(query, string(pair), w, dict[w]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to seed %s entry %q: %w", pair, w, err)
		}
	}

	return tx.Commit()
}

// LoadDictionaries reads every stored entry grouped by language pair
func (r *DictionaryRepo) LoadDictionaries() (map[domain.LanguagePair]domain.Dictionary, error) {
	query := `
		SELECT lang_pair, source_word, target_word
		FROM dictionary_entries
		ORDER BY lang_pair, source_word
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dicts := make(map[domain.LanguagePair]domain.Dictionary)
	for rows.Next() {
		var pair, source, target string
		if err := rows.Scan(&pair, &source, &target); err != nil {
			return nil, err
		}
		dict, ok := dicts[domain.LanguagePair(pair)]
		if !ok {
			dict = make(domain.Dictionary)
			dicts[domain.LanguagePair(pair)] = dict
		}
		dict[source] = target
	}

	return dicts, rows.Err()
}
