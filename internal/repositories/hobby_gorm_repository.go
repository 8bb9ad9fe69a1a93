package repositories

import (
	"fmt"

	"hobbyhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMHobbyRepository is a GORM implementation of HobbyRepository.
type GORMHobbyRepository struct {
	db *gorm.DB
}

// NewGORMHobbyRepository creates a new instance of GORMHobbyRepository.
func NewGORMHobbyRepository(db *gorm.DB) *GORMHobbyRepository {
	return &GORMHobbyRepository{
		db: db,
	}
}

// GetAll retrieves the whole hobby catalog, ordered by name.
func (r *GORMHobbyRepository) GetAll() ([]models.Hobby, error) {
	var hobbies []models.Hobby
	if err := r.db.Order("name ASC").Find(&hobbies).Error; err != nil {
		return nil, fmt.Errorf("failed to get all hobbies: %w", err)
	}
	return hobbies, nil
}

// GetByID retrieves a single hobby by its ID.
func (r *GORMHobbyRepository) GetByID(id uint) (*models.Hobby, error) {
	var hobby models.Hobby
	if err := r.db.First(&hobby, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("hobby with ID %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hobby by ID %d: %w", id, err)
	}
	return &hobby, nil
}

// GetOrCreateByName inserts the hobby under the name uniqueness constraint
// with ON CONFLICT DO NOTHING, then reads the row back. Two concurrent
// callers both end up with the same catalog entry.
func (r *GORMHobbyRepository) GetOrCreateByName(name string) (*models.Hobby, error) {
	hobby := models.Hobby{Name: name}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&hobby).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert hobby %q: %w", name, err)
	}

	// On conflict the insert is skipped and no ID is populated, so re-read by
	// the unique name either way.
	var existing models.Hobby
	if err := r.db.First(&existing, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("failed to get hobby %q after upsert: %w", name, err)
	}
	return &existing, nil
}

// ListForUser retrieves the hobbies held by a user, ordered by name.
func (r *GORMHobbyRepository) ListForUser(userID string) ([]models.Hobby, error) {
	var hobbies []models.Hobby
	err := r.db.Table("hobbies").
		Select("hobbies.*").
		Joins("JOIN user_hobbies ON user_hobbies.hobby_id = hobbies.id").
		Where("user_hobbies.user_id = ?", userID).
		Order("hobbies.name ASC").
		Find(&hobbies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list hobbies for user %s: %w", userID, err)
	}
	return hobbies, nil
}

// Attach adds the hobby to the user's set. The composite primary key plus
// ON CONFLICT DO NOTHING makes a repeated attach a no-op rather than an
// error or a duplicate row.
func (r *GORMHobbyRepository) Attach(userID string, hobbyID uint) error {
	membership := models.UserHobby{UserID: userID, HobbyID: hobbyID}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&membership).Error
	if err != nil {
		return fmt.Errorf("failed to attach hobby %d to user %s: %w", hobbyID, userID, err)
	}
	return nil
}

// Detach removes the hobby from the user's set.
func (r *GORMHobbyRepository) Detach(userID string, hobbyID uint) error {
	res := r.db.Where("user_id = ? AND hobby_id = ?", userID, hobbyID).Delete(&models.UserHobby{})
	if res.Error != nil {
		return fmt.Errorf("failed to detach hobby %d from user %s: %w", hobbyID, userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %s does not have hobby %d: %w", userID, hobbyID, ErrNotFound)
	}
	return nil
}
