package repositories

import (
	"time"

	"hobbyhub/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Update(user *models.User) error
	// FindSimilar returns users other than userID whose date of birth lies in
	// the closed interval [earliest, latest] and who share at least one hobby
	// with userID, ranked by distinct shared-hobby count descending with
	// ascending id as the tie-break.
	FindSimilar(userID string, earliest, latest time.Time) ([]models.SimilarCandidate, error)
}
