package services

import (
	"errors"
	"fmt"
	"strings"

	"hobbyhub/internal/models"
	"hobbyhub/internal/repositories"
)

// HobbyService handles business logic for the hobby catalog and user hobby
// sets.
type HobbyService struct {
	hobbyRepo repositories.HobbyRepository
}

// NewHobbyService creates a new HobbyService.
func NewHobbyService(hobbyRepo repositories.HobbyRepository) *HobbyService {
	return &HobbyService{
		hobbyRepo: hobbyRepo,
	}
}

// ListCatalog returns every hobby in the shared catalog.
func (s *HobbyService) ListCatalog() ([]models.Hobby, error) {
	return s.hobbyRepo.GetAll()
}

// AddHobby attaches a hobby by name to the user, creating the catalog entry
// lazily if it does not exist yet. Adding a hobby the user already holds is
// a no-op. Returns the user's updated hobby list.
func (s *HobbyService) AddHobby(userID, name string) ([]models.Hobby, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("hobby name is empty: %w", ErrHobbyNotFound)
	}
	hobby, err := s.hobbyRepo.GetOrCreateByName(name)
	if err != nil {
		return nil, err
	}
	if err := s.hobbyRepo.Attach(userID, hobby.ID); err != nil {
		return nil, err
	}
	return s.hobbyRepo.ListForUser(userID)
}

// RemoveHobby detaches a hobby from the user by catalog id. The catalog
// entry itself is never deleted. Returns the user's updated hobby list.
func (s *HobbyService) RemoveHobby(userID string, hobbyID uint) ([]models.Hobby, error) {
	if _, err := s.hobbyRepo.GetByID(hobbyID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrHobbyNotFound
		}
		return nil, err
	}
	if err := s.hobbyRepo.Detach(userID, hobbyID); err != nil {
		// Removing a hobby the user does not hold leaves the set unchanged.
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}
	return s.hobbyRepo.ListForUser(userID)
}

// ListForUser returns the user's current hobby set.
func (s *HobbyService) ListForUser(userID string) ([]models.Hobby, error) {
	return s.hobbyRepo.ListForUser(userID)
}
