package repositories

import (
	"fmt"
	"time"

	"hobbyhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by their username from the database.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with username %s not found: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with email %s not found: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// Update saves the user's current field values.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Save(user) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s not found for update: %w", user.ID, ErrNotFound)
	}
	return nil
}

// FindSimilar runs the ranked similarity query. The hobby-overlap condition
// is part of the WHERE clause, so users with zero shared hobbies never make
// it into the result at all; users without a date of birth never fall inside
// any window. Ranking ties are broken by ascending user id so that page
// boundaries are reproducible.
func (r *GORMUserRepository) FindSimilar(userID string, earliest, latest time.Time) ([]models.SimilarCandidate, error) {
	ownHobbies := r.db.Table("user_hobbies").Select("hobby_id").Where("user_id = ?", userID)

	var candidates []models.SimilarCandidate
	err := r.db.Table("users").
		Select("users.id, users.username, users.date_of_birth, COUNT(DISTINCT user_hobbies.hobby_id) AS common_hobbies").
		Joins("JOIN user_hobbies ON user_hobbies.user_id = users.id").
		Where("user_hobbies.hobby_id IN (?)", ownHobbies).
		Where("users.id <> ?", userID).
		Where("users.deleted_at IS NULL").
		Where("users.date_of_birth IS NOT NULL").
		Where("users.date_of_birth BETWEEN ? AND ?", earliest, latest).
		Group("users.id, users.username, users.date_of_birth").
		Order("common_hobbies DESC, users.id ASC").
		Scan(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query similar users for %s: %w", userID, err)
	}
	return candidates, nil
}
