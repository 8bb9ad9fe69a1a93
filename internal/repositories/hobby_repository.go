package repositories

import "hobbyhub/internal/models"

// HobbyRepository defines the interface for hobby catalog and membership
// data access.
type HobbyRepository interface {
	GetAll() ([]models.Hobby, error)
	GetByID(id uint) (*models.Hobby, error)
	// GetOrCreateByName returns the catalog entry for name, creating it first
	// if it does not exist yet. The lookup is an upsert under the uniqueness
	// constraint, not a check-then-insert.
	GetOrCreateByName(name string) (*models.Hobby, error)
	ListForUser(userID string) ([]models.Hobby, error)
	// Attach adds a hobby to a user's set. Attaching a hobby the user already
	// holds is a no-op.
	Attach(userID string, hobbyID uint) error
	Detach(userID string, hobbyID uint) error
}
