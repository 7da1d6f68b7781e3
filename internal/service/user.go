package service

import (
	"fmt"

	"wordswap/internal/domain"
	"wordswap/internal/repository"
)

// UserService keeps each bot user's chosen language pair
type UserService struct {
	userRepo    repository.UserRepository
	translator  Translator
	defaultPair domain.LanguagePair
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, translator Translator, defaultPair domain.LanguagePair) *UserService {
	return &UserService{
		userRepo:    userRepo,
		translator:  translator,
		defaultPair: defaultPair,
	}
}

// EnsureUserExists creates user record if doesn't exist
func (s *UserService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}

// LanguagePair returns the user's pair, falling back to the default when none
// is stored or the stored one is no longer registered
func (s *UserService) LanguagePair(userID int64) (domain.LanguagePair, error) {
	pair, err := s.userRepo.GetLanguagePair(userID)
	if err != nil {
		return "", err
	}
	if pair == "" || !s.translator.HasPair(pair) {
		return s.defaultPair, nil
	}
	return pair, nil
}

// SetLanguagePair stores pair for the user after checking it is registered
func (s *UserService) SetLanguagePair(userID int64, pair domain.LanguagePair) error {
	if !s.translator.HasPair(pair) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownLanguagePair, pair)
	}
	return s.userRepo.SetLanguagePair(userID, pair)
}
