package postgres

import (
	"database/sql"

	"wordswap/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// GetLanguagePair returns the user's chosen pair, or "" when none is stored
func (r *UserRepo) GetLanguagePair(userID int64) (domain.LanguagePair, error) {
	var pair sql.NullString
	query := `SELECT lang_pair FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&pair)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return domain.LanguagePair(pair.String), nil
}

// SetLanguagePair stores the user's chosen pair
func (r *UserRepo) SetLanguagePair(userID int64, pair domain.LanguagePair) error {
	query := `
		INSERT INTO users (user_id, lang_pair)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET lang_pair = EXCLUDED.lang_pair
	`
	_, err := r.db.Exec(query, userID, string(pair))
	return err
}
